package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"workforce/internal/apperr"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message string, details any, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}

// Err maps an error from the domain layer onto the wire. Unrecognized
// errors surface as a generic 500 without leaking their text.
func Err(w http.ResponseWriter, err error, requestID string) {
	kind := apperr.KindOf(err)
	status, code := http.StatusInternalServerError, "internal_error"
	switch kind {
	case apperr.KindNotFound:
		status, code = http.StatusNotFound, "not_found"
	case apperr.KindConflict:
		status, code = http.StatusConflict, "conflict"
	case apperr.KindBadRequest:
		status, code = http.StatusBadRequest, "bad_request"
	case apperr.KindReferential:
		status, code = http.StatusConflict, "referential_integrity"
	}
	message := apperr.Message(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "requestId", requestID, "err", err)
		message = "internal server error"
	}
	Fail(w, status, code, message, requestID)
}
