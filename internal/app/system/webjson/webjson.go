// Package webjson handles JSON request decoding and response writing
// for the API handlers.
//
// All error responses share one shape, {"error": "..."}, and the
// status code comes from the apperr kind. Internal errors are logged
// with their cause but the client only sees a generic message.
package webjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies; expense payloads are small.
const maxBodyBytes = 1 << 20

// Write encodes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes {"message": msg} with the given status.
func WriteMessage(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"message": msg})
}

// Decode reads the request body into dst. Unknown fields, malformed
// JSON, and empty bodies come back as Validation errors.
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.New(apperr.Validation, "Request body is required")
		}
		return apperr.Wrap(apperr.Validation, "Invalid JSON in request body", err)
	}
	return nil
}

// ErrorWriter maps application errors onto HTTP error responses.
type ErrorWriter struct {
	Log *zap.Logger
}

// WriteError writes {"error": msg} with the status for err's kind.
// The underlying cause of internal errors is logged, never sent.
func (ew ErrorWriter) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError && ew.Log != nil {
		ew.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	Write(w, status, map[string]string{"error": apperr.ClientMessage(err)})
}
