package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
)

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	Meta    *query.Meta  `json:"meta,omitempty"`
	Stats   interface{}  `json:"stats,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Success responses
func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List writes a page of records together with its pagination block and
// the statistics computed by the service.
func List(w http.ResponseWriter, data interface{}, meta query.Meta, stats interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
		Meta:    &meta,
		Stats:   stats,
	})
}

// Error responses
func errorResponse(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	writeJSON(w, status, Response{
		Success: false,
		Message: message,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	errorResponse(w, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func ValidationError(w http.ResponseWriter, details map[string]string) {
	errorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
}

func NotFound(w http.ResponseWriter, message string) {
	errorResponse(w, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	errorResponse(w, http.StatusConflict, "CONFLICT", message, nil)
}

func RequestTimeout(w http.ResponseWriter, message string) {
	errorResponse(w, http.StatusRequestTimeout, "REQUEST_TIMEOUT", message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	errorResponse(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message, nil)
}
