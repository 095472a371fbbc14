// Package handlers holds the JSON error envelope shared by the handler packages
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the body of every JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: errorType, Message: message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// WriteInternalError logs err against the named handler and writes a generic 500.
// The client never sees err.
func WriteInternalError(w http.ResponseWriter, handler string, err error) {
	log.Printf("ERROR: Unexpected error in %s handler: %v", handler, err)
	WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
}
