package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskboard/taskboard-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorResponse builds the plain error body: {"message": ..., "success": false}.
func errorResponse(msg string) map[string]any {
	return map[string]any{"message": msg, "success": false}
}

// validationResponse builds the field-by-field 400 body:
// {"error": {field: [messages]}, "success": false}.
func validationResponse(ve *service.ValidationError) map[string]any {
	return map[string]any{"error": ve.Fields, "success": false}
}

// writeValidationError writes a 400 if err is a ValidationError and reports
// whether it was handled.
func writeValidationError(w http.ResponseWriter, err error) bool {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, validationResponse(ve))
		return true
	}
	return false
}
