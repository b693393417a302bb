package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError writes the same {"error": "..."} body the REST handlers use.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message}) //nolint:errcheck
}
