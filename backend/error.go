package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"streetadmin/apperr"
)

// Error is a non-2xx response from the STREET API.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// errorBody covers the shapes the API uses for errors. message may be a
// string or a list of validation messages.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func parseErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return strings.TrimSpace(string(body))
	}
	var s string
	if err := json.Unmarshal(eb.Message, &s); err == nil && s != "" {
		return s
	}
	var list []string
	if err := json.Unmarshal(eb.Message, &list); err == nil && len(list) > 0 {
		return strings.Join(list, "; ")
	}
	return eb.Error
}

// toAppError classifies a backend failure for the handlers.
func toAppError(err error) error {
	var be *Error
	if !errors.As(err, &be) {
		return apperr.UnavailableErr("The STREET service is unreachable. Please try again.", err)
	}
	switch be.Status {
	case http.StatusUnauthorized:
		return &apperr.AppError{Kind: apperr.Unauthorized, PublicMsg: "Your session has expired. Please sign in again.", Err: be}
	case http.StatusForbidden:
		return &apperr.AppError{Kind: apperr.Forbidden, PublicMsg: "You do not have permission to do that.", Err: be}
	case http.StatusNotFound:
		return &apperr.AppError{Kind: apperr.NotFound, PublicMsg: "We couldn't find what you were looking for.", Err: be}
	case http.StatusConflict:
		return &apperr.AppError{Kind: apperr.Conflict, PublicMsg: publicOr(be.Message, "That change conflicts with existing data."), Err: be}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &apperr.AppError{Kind: apperr.Invalid, PublicMsg: publicOr(be.Message, "The request was rejected. Check the values and try again."), Err: be}
	default:
		return apperr.UnavailableErr("The STREET service is unavailable. Please try again.", be)
	}
}

func publicOr(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
