package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Error kinds. Match them with errors.Is on any error returned by a service.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrConnectivity = errors.New("store unreachable")
	ErrTransaction  = errors.New("transaction failed")
	ErrStore        = errors.New("store error")
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Error is returned by every service operation that fails. Message is safe to show to
// API clients; Err keeps the underlying cause for logging.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func validationError(message string) *Error {
	return newError(ErrValidation, message, nil)
}

func notFoundError(message string) *Error {
	return newError(ErrNotFound, message, nil)
}

// Message returns the client-facing message of err, or fallback when err does not
// carry one.
func Message(err error, fallback string) string {
	var svcErr *Error
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	return fallback
}

// storeError classifies a raw store error. onConflict is the message used for unique
// and foreign key violations.
func storeError(err error, message, onConflict string) error {
	if err == nil {
		return nil
	}
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return newError(ErrNotFound, message, err)
	case isConflict(err):
		if onConflict == "" {
			onConflict = message
		}
		return newError(ErrConflict, onConflict, err)
	case isConnectivity(err):
		return newError(ErrConnectivity, "Banco de dados indisponível", err)
	}
	return newError(ErrStore, message, err)
}

// lookupError classifies the error of a single-row lookup
func lookupError(err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrNotFound, notFound, err)
	}
	return storeError(err, "Erro ao consultar o banco de dados", "")
}

func isConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation
	}
	return false
}

func isConnectivity(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
