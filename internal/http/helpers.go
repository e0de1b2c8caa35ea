package http

import (
	"encoding/json"
	"net/http"

	"ledgerd/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"status":  core.StatusError,
		"message": message,
	})
}

// resultStatus maps a typed operation result onto an HTTP status code.
// Validation failures are 400; everything else the contract defines
// (ok, not_found, no_change) is a successful response — the result
// object, not the code, carries the outcome.
func resultStatus(status string) int {
	if status == core.StatusError {
		return http.StatusBadRequest
	}
	return http.StatusOK
}
