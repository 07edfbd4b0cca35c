package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes of the integrity violations the repositories translate.
const (
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
)

type violation int

const (
	violationNone violation = iota
	violationUnique
	violationForeignKey
	violationCheck
)

// classifyViolation maps a write error to the integrity constraint it broke.
// GORM's translated errors are checked first; raw driver errors fall back to their SQLSTATE.
func classifyViolation(err error) violation {
	switch {
	case err == nil:
		return violationNone
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return violationUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return violationForeignKey
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return violationCheck
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return violationNone
	}

	switch pgErr.Code {
	case sqlStateUniqueViolation:
		return violationUnique
	case sqlStateForeignKeyViolation:
		return violationForeignKey
	case sqlStateCheckViolation:
		return violationCheck
	default:
		return violationNone
	}
}
