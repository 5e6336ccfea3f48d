package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ===============================
// Business error taxonomy
// ===============================

type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindInvalidState Kind = "invalid_state"
	KindConflict     Kind = "conflict"
	KindTxAborted    Kind = "transaction_aborted"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(kind Kind, code string) error {
	return BusinessError{Kind: kind, Code: code}
}

func ErrNotFound(code string) error     { return ErrBusiness(KindNotFound, code) }
func ErrForbidden(code string) error    { return ErrBusiness(KindForbidden, code) }
func ErrInvalidState(code string) error { return ErrBusiness(KindInvalidState, code) }
func ErrConflict(code string) error     { return ErrBusiness(KindConflict, code) }
func ErrTxAborted(code string) error    { return ErrBusiness(KindTxAborted, code) }

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// ===============================
// Postgres
// ===============================

// 23505 = unique_violation; 40001 = serialization_failure; 40P01 = deadlock_detected
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
