package httputil

import (
	"encoding/json"
	"net/http"

	apperrors "barberagenda/pkg/errors"
)

// MessageResponse is the body of every error and confirmation response.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON serializes payload with the fixed header set: wildcard
// cross-origin allowance plus JSON content type on every response.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) error {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(payload)
}

// WriteMessage writes a {"message": ...} confirmation at the given status.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteError maps an error onto its status code and a {"message": ...} body.
// Errors that are not AppErrors become 500s so nothing escapes unclassified.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.HTTPStatus, MessageResponse{Message: appErr.ResponseMessage()})
}
