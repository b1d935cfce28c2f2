package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/talos/internal/lib/logger/sl"
	"github.com/UnknownOlympus/talos/internal/models"
)

// writeJSON serializes payload and writes it with the given status code.
func writeJSON(log *slog.Logger, writer http.ResponseWriter, req *http.Request, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(payload); err != nil {
		log.ErrorContext(req.Context(), "Failed to write response", sl.Err(err))
	}
}

// writeError maps a domain error onto its status code and `{"error": ...}`
// payload. Unknown errors become 500 without leaking internals.
func writeError(log *slog.Logger, writer http.ResponseWriter, req *http.Request, err error) {
	var verr *models.ValidationError

	status := http.StatusInternalServerError
	message := "An unexpected error occurred"

	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		message = verr.Message
	case errors.Is(err, models.ErrEmployeeNotFound):
		status = http.StatusNotFound
		message = "Employee not found"
	case errors.Is(err, models.ErrSkillNotFound):
		status = http.StatusNotFound
		message = "Skill not found"
	case errors.Is(err, models.ErrEmailExists):
		status = http.StatusConflict
		message = "Email already exists"
	case errors.Is(err, models.ErrSkillExists):
		status = http.StatusConflict
		message = "Skill already exists for this employee"
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "Invalid email or password"
	default:
		log.ErrorContext(req.Context(), "Request failed", sl.Err(err))
	}

	writeJSON(log, writer, req, status, map[string]any{"error": message})
}
