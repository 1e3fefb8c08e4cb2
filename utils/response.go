package utils

import (
	"encoding/json"
	"net/http"
)

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithError writes the error envelope. The code string is stable and
// machine-checkable; the message is for humans.
func RespondWithError(w http.ResponseWriter, statusCode int, code, msg string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": msg, "code": code})
}

type M map[string]interface{}
