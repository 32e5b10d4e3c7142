package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode and a
// JSON content type. If marshaling fails it responds with 500 and returns
// the wrapped error.
//
// The keeper status endpoint and the test object-store fakes use it:
//
//	WriteJSON(w, lastResult, http.StatusOK)
//	WriteJSON(w, map[string][]string{"keys": keys}, http.StatusOK)
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

// WriteError writes {"error": msg} with statusCode.
func WriteError(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = WriteJSON(w, map[string]string{"error": msg}, statusCode)
}
