package postgresql

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// isRowID reports whether s can address a UUID primary key. Anything else
// cannot match a row, so lookups treat it as a miss instead of sending it.
func isRowID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

func newRowID() string {
	return uuid.Must(uuid.NewV7()).String()
}
