package svcerr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("email taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrForbidden          = errors.New("forbidden")
	ErrPersistence        = errors.New("db error")
)

// validationError несёт сообщение для клиента и матчится на ErrValidation
type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

func (e *validationError) Unwrap() error {
	return ErrValidation
}

// Validation создаёт ошибку валидации с сообщением для клиента
func Validation(msg string) error {
	return &validationError{msg: msg}
}

// Persistence оборачивает ошибку хранилища. Уже известные ошибки возвращаются как есть.
func Persistence(err error) error {
	if err == nil || IsKnown(err) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

// IsKnown сообщает, относится ли ошибка к одному из видов сервиса
func IsKnown(err error) bool {
	for _, target := range []error{
		ErrUnauthenticated,
		ErrValidation,
		ErrDuplicateEmail,
		ErrInvalidCredentials,
		ErrUserNotFound,
		ErrInsufficientFunds,
		ErrForbidden,
		ErrPersistence,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// HTTPStatus возвращает HTTP статус для ошибки сервиса
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message возвращает текст ошибки, который можно отдать клиенту
func Message(err error) string {
	var vErr *validationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &vErr):
		return vErr.msg
	case errors.Is(err, ErrPersistence):
		return ErrPersistence.Error()
	}

	for _, target := range []error{
		ErrUnauthenticated,
		ErrDuplicateEmail,
		ErrInvalidCredentials,
		ErrUserNotFound,
		ErrInsufficientFunds,
		ErrForbidden,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return ErrPersistence.Error()
}
