package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgresDuplicate распознаёт нарушение уникального ограничения (SQLSTATE 23505).
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
