package handlers

import (
	"github.com/pocketbase/pocketbase/core"
)

// jsonError writes a JSON error payload with the given status.
func jsonError(e *core.RequestEvent, status int, msg string) error {
	return e.JSON(status, map[string]any{"error": msg})
}

// jsonValidationError writes a 400 with the per-field validation messages.
func jsonValidationError(e *core.RequestEvent, fields map[string]string) error {
	return e.JSON(400, map[string]any{
		"error":  "Validation failed",
		"fields": fields,
	})
}
