package infra

import (
	"errors"
	"log/slog"

	"catchpac/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps a low-level error with a kind; DB_FAILURE when no kind
// is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	slog.Error("Repository error: "+msg, slog.String("kind", string(k)))

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Postgres error codes we classify
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ClassifyPgErr maps a pgconn error to a repository error kind so callers
// can branch on conflicts without knowing Postgres error codes.
func ClassifyPgErr(err error) RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return KindDuplicateKey
		case pgForeignKeyViolation:
			return KindForeignKeyViolated
		}
	}
	return KindDBFailure
}
