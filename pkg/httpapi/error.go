package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorEnvelope standardizes JSON error responses for API namespaces.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// CodedError is implemented by service errors that know their HTTP mapping.
type CodedError interface {
	error
	HTTPStatus() int
	ErrorCode() string
	PublicMessage() string
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// WriteServiceError writes err as an envelope. Errors without a known
// mapping become a 500 with fallbackCode.
func WriteServiceError(w http.ResponseWriter, requestID, fallbackCode string, err error) error {
	meta := map[string]string{}
	if requestID != "" {
		meta["request_id"] = requestID
	}
	var coded CodedError
	if errors.As(err, &coded) {
		return WriteError(w, coded.HTTPStatus(), coded.ErrorCode(), coded.PublicMessage(), meta)
	}
	return WriteError(w, http.StatusInternalServerError, fallbackCode, "internal server error", meta)
}
