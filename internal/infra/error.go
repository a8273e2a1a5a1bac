package infra

import (
	"errors"
	"log/slog"

	"pos-loyalty/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	// KindConflict is a lost optimistic race on a balance or stock row. The
	// unit of work retries the whole transaction.
	KindConflict RepositoryErrorKind = "CONFLICT"
)

// RepositoryError is what both stores return so the use cases never look at
// driver errors directly.
type RepositoryError struct {
	Kind  RepositoryErrorKind
	msg   string
	cause error
}

func (e RepositoryError) Error() string {
	if e.cause == nil {
		return string(e.Kind) + ": " + e.msg
	}
	return string(e.Kind) + ": " + e.msg + ": " + e.cause.Error()
}

func (e RepositoryError) Unwrap() error {
	return e.cause
}

// WrapRepoErr classifies err as kind, KindDBFailure when omitted. Only DB
// failures are logged here.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	if k == KindDBFailure {
		slog.Error("store failure", slog.String("op", msg), slog.Any("error", err))
	}
	return RepositoryError{Kind: k, msg: msg, cause: errs.Wrap(err, msg)}
}

func NewNotFound(msg string) error {
	return RepositoryError{Kind: KindNotFound, msg: msg}
}

func NewConflict(msg string) error {
	return RepositoryError{Kind: KindConflict, msg: msg}
}

// KindOf returns the kind of the outermost RepositoryError in the chain, or
// the empty kind.
func KindOf(err error) RepositoryErrorKind {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
