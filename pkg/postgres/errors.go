package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caringcompass/carematch/pkg/domain"
)

// Postgres error codes mapped to the domain validation taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidTextRep      = "22P02"
	pgSerializationFail   = "40001"
)

// mapError translates driver errors into domain sentinels so callers never
// match on SQLSTATE strings. Unrecognized errors pass through wrapped.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, domain.ErrDuplicateKey)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, domain.ErrInvalidReference)
		case pgCheckViolation, pgInvalidTextRep:
			return fmt.Errorf("%s: %s: %w", op, pgErr.Message, domain.ErrInvalidValue)
		case pgSerializationFail:
			return fmt.Errorf("%s: %w", op, domain.ErrConflictingAssignment)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
