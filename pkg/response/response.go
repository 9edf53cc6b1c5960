// Package response writes JSON HTTP responses.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK writes v with status 200.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Err writes {"error": message} with the given status code.
func Err(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
