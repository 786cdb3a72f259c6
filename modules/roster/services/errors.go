package services

import (
	"fmt"
	"net/http"
)

const (
	CodeInvalidDate       = "ROSTER_INVALID_DATE"
	CodeInvalidCount      = "ROSTER_INVALID_COUNT"
	CodeSourceUnavailable = "ROSTER_SOURCE_UNAVAILABLE"
)

type ServiceError struct {
	Status  int
	Code    string
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

func (e *ServiceError) HTTPStatus() int { return e.Status }

func (e *ServiceError) ErrorCode() string { return e.Code }

func (e *ServiceError) PublicMessage() string { return e.Message }

func newServiceError(status int, code, message string, cause error) *ServiceError {
	return &ServiceError{Status: status, Code: code, Message: message, Cause: cause}
}

func invalidDate(cause error) *ServiceError {
	return newServiceError(http.StatusBadRequest, CodeInvalidDate, cause.Error(), cause)
}
