package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"simlab/pkg/apperror"
)

// ErrorBody is the uniform JSON envelope emitted for every non-2xx response.
// Fields carries per-field validation reasons and is present only on
// validation failures; the key name follows the original wire format.
type ErrorBody struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"campos,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func BadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, message, nil)
}

// ValidationFailed emits the 400 envelope with the field -> reason map.
func ValidationFailed(w http.ResponseWriter, fields map[string]string) {
	writeError(w, http.StatusBadRequest, "Validation failed", fields)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	writeError(w, http.StatusNotFound, message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	writeError(w, http.StatusInternalServerError, message, nil)
}

// FromError translates a usecase error into its response. Handlers call this
// for any error they do not map themselves, keeping status-code logic out of
// the controllers.
func FromError(w http.ResponseWriter, err error) {
	var notFound *apperror.NotFoundError
	var conflict *apperror.ConflictError

	switch {
	case errors.As(err, &notFound):
		NotFound(w, notFound.Message)
	case errors.As(err, &conflict):
		Conflict(w, conflict.Message)
	default:
		InternalServerError(w, "")
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string, fields map[string]string) {
	JSON(w, statusCode, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    statusCode,
		Error:     http.StatusText(statusCode),
		Message:   message,
		Fields:    fields,
	})
}
