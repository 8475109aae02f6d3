// Package api contains the HTTP handlers: the thin orchestration layer
// between the store, the suggestion engine and the client.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/cooknext/backend/internal/service"
)

// ViewState is the session-scoped presentation state the server keeps on
// the client's behalf: the suggestion reveal-all cursor and per-recipe
// "details expanded" flags.
type ViewState interface {
	RevealAll(ctx context.Context) (bool, error)
	SetRevealAll(ctx context.Context, revealAll bool) error
	ExpandedIDs(ctx context.Context) (map[string]bool, error)
	SetExpanded(ctx context.Context, recipeID string, expanded bool) error
}

// statusFor maps service errors onto HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
