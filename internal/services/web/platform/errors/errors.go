// Package errors defines typed web failures and their HTTP mapping.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	domainerrors "github.com/empowereconomy/empower/internal/platform/errors"
)

// Kind classifies a failure for HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
)

// Error is a typed web failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the internal message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error carrying a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// LocalizationKey returns the catalog key that explains err to a visitor.
// Domain errors resolve to their code's key.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var webErr Error
	if stderrors.As(err, &webErr) {
		return webErr.Key
	}
	var domainErr *domainerrors.Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code.LocalizationKey()
	}
	return ""
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var webErr Error
	if stderrors.As(err, &webErr) {
		return kindStatus(webErr.Kind)
	}
	var domainErr *domainerrors.Error
	if stderrors.As(err, &domainErr) {
		return categoryStatus(domainErr.Code.Category())
	}
	return http.StatusInternalServerError
}

func kindStatus(kind Kind) int {
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func categoryStatus(category domainerrors.Category) int {
	switch category {
	case domainerrors.CategoryInvalidArgument:
		return http.StatusBadRequest
	case domainerrors.CategoryNotFound:
		return http.StatusNotFound
	case domainerrors.CategoryUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
