package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error variables
var (
	ErrNotFound            = errors.New("recipe not found")
	ErrAuthorAlreadyExists = errors.New("username or email already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidReference    = errors.New("referenced category or author does not exist")
	ErrForbidden           = errors.New("recipe belongs to another author")
)

// PostgreSQL error codes the services translate.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
