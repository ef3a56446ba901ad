// Package utils provides general-purpose helper utilities used across
// different parts of the application: HTTP response writing, HTTP client
// initialization, and identifier generation.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP
// response with the provided status code. The "Content-Type" header is set
// to "application/json" before the body is sent.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error. The int result is the number of body bytes
// written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
