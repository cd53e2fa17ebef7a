package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/contract-review/internal/domain/contract"
	"github.com/bryanwahyu/contract-review/internal/middleware"
)

const internalErrorMessage = "Internal server error"

// statusError is a caller-facing error with a fixed status and message.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string { return e.message }

var (
	errInvalidBody    = &statusError{status: http.StatusBadRequest, message: "Invalid request body"}
	errNotImplemented = &statusError{status: http.StatusNotImplemented, message: "Not implemented"}
)

type errorResponse struct {
	Error string `json:"error"`
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap is the outermost failure boundary for API handlers. Validation and status errors
// reach the caller with their own message; anything else is logged and reported as a bare 500.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		if ve, ok := contract.AsValidationError(err); ok {
			writeError(w, http.StatusBadRequest, ve.Reason)
			return
		}
		if se, ok := err.(*statusError); ok {
			writeError(w, se.status, se.message)
			return
		}
		r.log.WithFields(logrus.Fields{
			"request_id": middleware.RequestIDFromContext(req.Context()),
			"method":     req.Method,
			"path":       req.URL.Path,
		}).WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
