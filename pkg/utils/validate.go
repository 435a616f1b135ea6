package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"vidtube.com/pkg/errno"
)

var (
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9_.]{3,32}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidUsername accepts lower-case channel handles.
func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// ParseID accepts a base-10 integer greater than zero.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// CheckContent trims user text and rejects it when empty or longer than max runes.
func CheckContent(content string, max int) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", errno.ParamErr.WithMessage("content cannot be empty")
	}
	if utf8.RuneCountInString(content) > max {
		return "", errno.ParamErr.WithMessage("content is too long")
	}
	return content, nil
}
