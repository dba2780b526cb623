package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WillyEverGreen/gigbridge/internal/analyzer"
	"github.com/WillyEverGreen/gigbridge/internal/extraction"
	"github.com/WillyEverGreen/gigbridge/internal/ledger"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid input", &analyzer.InvalidInputError{Length: 3}, http.StatusUnprocessableEntity},
		{"no readable text", &extraction.NoReadableTextError{Length: 2}, http.StatusUnprocessableEntity},
		{"collaborator down", &extraction.UnavailableError{Message: "refused"}, http.StatusBadGateway},
		{"contract violation", &extraction.ContractError{Cause: errors.New("bad payload")}, http.StatusBadGateway},
		{"store failure", &ledger.PersistenceError{Op: "put", UserID: "u"}, http.StatusInternalServerError},
		{"unknown error", errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestUserMessage_UnreadableGuidance(t *testing.T) {
	msg := userMessage(&extraction.NoReadableTextError{Length: 0})

	assert.Equal(t, "File unreadable: no usable text found. Retry with a clearer scan.", msg)
}

func TestUserMessage_NeverLeaksInternals(t *testing.T) {
	msg := userMessage(&ledger.PersistenceError{Op: "put", UserID: "u", Cause: errors.New("pq: secret dsn")})

	assert.NotContains(t, msg, "secret")
	assert.NotContains(t, msg, "pq")
}
