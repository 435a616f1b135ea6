package utils

import (
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"io"
	"os"
)

// GetFileMD5 hashes a file's content; blob object names are derived from it.
func GetFileMD5(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return ``, err
	}
	defer file.Close()

	h := md5.New() //nolint:gosec
	if _, err := io.Copy(h, file); err != nil {
		return ``, err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
