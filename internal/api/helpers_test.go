package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/giftwise/giftwise-api/internal/api/shared"
)

// authenticatedRequest builds a request whose context carries the given user
// ID, mimicking what the auth middleware does after validating a token.
func authenticatedRequest(
	t *testing.T,
	method, path string,
	body io.Reader,
	userID uuid.UUID,
) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}
