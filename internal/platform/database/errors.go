package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate is a unique constraint violation.
	ErrDuplicate = errors.New("duplicate key")
	// ErrReferenced is a foreign key violation: the row is still referenced or references a missing row.
	ErrReferenced = errors.New("foreign key violation")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"

	sqliteForeignKeyFailed = "FOREIGN KEY constraint failed"
)

// TranslateError maps driver specific constraint errors to ErrDuplicate / ErrReferenced.
// Other errors are returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return errors.Join(ErrDuplicate, err)
		case pqForeignKeyViolation:
			return errors.Join(ErrReferenced, err)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return errors.Join(ErrDuplicate, err)
		case sqlite3.ErrConstraintForeignKey:
			return errors.Join(ErrReferenced, err)
		}
		// ON DELETE RESTRICT is enforced as a trigger constraint (extended code 1811).
		if liteErr.Code == sqlite3.ErrConstraint && strings.Contains(liteErr.Error(), sqliteForeignKeyFailed) {
			return errors.Join(ErrReferenced, err)
		}
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(ErrReferenced, err)
	}
	return err
}
