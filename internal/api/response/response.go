// Package response writes the JSON bodies shared by handlers and middleware.
package response

import (
	"encoding/json"
	"net/http"

	"appinfo/internal/models"
)

// Error sends a JSON error response.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, models.ErrorResponse{Error: message})
}

// JSON sends a JSON response.
func JSON(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}
