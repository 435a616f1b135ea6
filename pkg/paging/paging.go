// Package paging normalizes page/limit pairs for every listing operation.
package paging

import (
	"strconv"
	"strings"

	"vidtube.com/pkg/constants"
)

// MaxLimit bounds a single page so a caller cannot request the whole collection.
const MaxLimit = constants.MaxLimit

type Window struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize collapses non-positive values to the defaults and caps the limit.
func Normalize(page, limit int) Window {
	if page <= 0 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Window{Page: page, Limit: limit}
}

// Parse is Normalize for raw query values; anything that is not a base-10
// integer counts as absent.
func Parse(page, limit string) Window {
	return Normalize(atoi(page), atoi(limit))
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Offset is the number of rows to skip before the window starts.
func (w Window) Offset() int {
	if w.Page <= 1 {
		return 0
	}
	return (w.Page - 1) * w.Limit
}

// Page is the envelope returned by listing operations.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func NewPage[T any](w Window, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Page: w.Page, Limit: w.Limit}
}
