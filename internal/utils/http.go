package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes payload to JSON and writes it to the HTTP response
// with the given status code and a "application/json" content type.
//
// Every success path of the API goes through this helper so that response
// headers stay consistent across handlers. If marshaling fails the response
// degrades to a 500 with a generic message and the wrapped error is
// returned for logging; the number of body bytes written is returned
// otherwise.
//
// Example usage:
//
//	utils.WriteJSON(w, models.MessageResponse{Message: "Logout Successfully"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, payload any, statusCode int) (int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "error serializing response", http.StatusInternalServerError)
		return 0, fmt.Errorf("error serializing response to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
