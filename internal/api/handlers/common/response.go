package common

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the uniform JSON shape every endpoint returns.
// Success responses carry data; error responses omit it.
type Envelope struct {
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
}

// WriteSuccess writes a success envelope with the given status code and payload
func WriteSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	write(w, Envelope{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// WriteError writes an error envelope. The message must be safe to show to
// clients; internal causes are logged at the call site, never serialized.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	write(w, Envelope{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	})
}

func write(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.StatusCode)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		// Headers are already sent; log and move on
		log.Printf("Failed to encode response envelope: %v", err)
	}
}
