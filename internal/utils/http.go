package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-uaa/models"
)

// ProblemContentType is the media type of error bodies.
const ProblemContentType = "application/problem+json"

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	return writeJSON(w, data, statusCode, "application/json")
}

// WriteProblem writes p as an "application/problem+json" body with p.Status
// as the response code.
func WriteProblem(w http.ResponseWriter, p models.Problem) (int, error) {
	return writeJSON(w, p, p.Status, ProblemContentType)
}

func writeJSON(w http.ResponseWriter, data any, statusCode int, contentType string) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
