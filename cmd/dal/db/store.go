// Package db is the GORM/MySQL implementation of dal.Store.
package db

import (
	"strings"

	"vidtube.com/cmd/dal"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

var _ dal.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// wrap annotates a store error, surfacing unique violations as dal.ErrDuplicate.
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.WithMessage(dal.ErrDuplicate, msg)
	}
	return errors.WithMessage(err, msg)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
}

type countRow struct {
	ID    int64
	Total int64
}

func countMap(rows []countRow) map[int64]int64 {
	m := make(map[int64]int64, len(rows))
	for _, r := range rows {
		m[r.ID] = r.Total
	}
	return m
}
