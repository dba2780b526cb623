package server

import (
	"errors"
	"net/http"

	"github.com/WillyEverGreen/gigbridge/internal/analyzer"
	"github.com/WillyEverGreen/gigbridge/internal/extraction"
	"github.com/WillyEverGreen/gigbridge/internal/ledger"
)

// HTTPStatus returns the appropriate HTTP status code for a core error.
func HTTPStatus(err error) int {
	var invalidInput *analyzer.InvalidInputError
	var noText *extraction.NoReadableTextError
	var unavailable *extraction.UnavailableError
	var contract *extraction.ContractError
	var persistence *ledger.PersistenceError

	switch {
	case errors.As(err, &invalidInput), errors.As(err, &noText):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unavailable):
		return http.StatusBadGateway
	case errors.As(err, &contract):
		return http.StatusBadGateway
	case errors.As(err, &persistence):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// userMessage maps a core error to an actionable client-facing message.
// Extraction and analysis failures must never silently fabricate scores.
func userMessage(err error) string {
	var invalidInput *analyzer.InvalidInputError
	var noText *extraction.NoReadableTextError
	var unavailable *extraction.UnavailableError
	var contract *extraction.ContractError

	switch {
	case errors.As(err, &noText), errors.As(err, &invalidInput):
		return "File unreadable: no usable text found. Retry with a clearer scan."
	case errors.As(err, &unavailable):
		return "Text extraction service is unavailable. Please try again shortly."
	case errors.As(err, &contract):
		return "Text extraction service returned an unexpected response."
	default:
		return "Internal error processing request."
	}
}
