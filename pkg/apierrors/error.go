package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"tasktracker/internal/core/domain"
	"tasktracker/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code and message.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{code, GetTransErrorMsg(msgKey, lang)}}
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(lang, msgKey, nil)
}

// FromDomainError maps a core error to an HTTP status and message key.
// fallbackKey is used for errors the core does not classify.
func FromDomainError(err error, fallbackKey string) (int, string) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, MsgTaskNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, MsgUserNotFound
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, MsgCategoryNotFound
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, MsgCommentNotFound
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, MsgNotificationNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, MsgTaskForbidden
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, MsgInvalidTransition
	case errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusUnprocessableEntity, MsgInvalidOperation
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, MsgInvalidTaskPayload
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, MsgStorageUnavailable
	default:
		return http.StatusInternalServerError, fallbackKey
	}
}
