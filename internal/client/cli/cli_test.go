package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogkeeper/internal/shared"
	"catalogkeeper/internal/validation"
)

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		err      error
		name     string
		contains string
	}{
		{
			name:     "session expired",
			err:      fmt.Errorf("list products request failed: %w", shared.ErrSessionExpired),
			contains: "session has expired",
		},
		{
			name:     "unauthenticated",
			err:      shared.ErrUnauthenticated,
			contains: "login",
		},
		{
			name:     "invalid stored credential",
			err:      shared.ErrInvalidCredential,
			contains: "corrupt",
		},
		{
			name:     "login rejected",
			err:      fmt.Errorf("login request failed: %w", shared.ErrInvalidCredentials),
			contains: "invalid email or password",
		},
		{
			name:     "network failure",
			err:      fmt.Errorf("request failed: %w", shared.ErrNetworkFailure),
			contains: "could not reach the server",
		},
		{
			name:     "not found",
			err:      shared.ErrNotFound,
			contains: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FriendlyError(tt.err)
			require.Error(t, got)
			assert.Contains(t, got.Error(), tt.contains)
		})
	}
}

func TestFriendlyError_Validation(t *testing.T) {
	vErr := &validation.Error{Field: "price", Reason: "price cannot be negative"}
	wrapped := fmt.Errorf("create product request failed: %w", vErr)

	got := FriendlyError(wrapped)

	assert.Equal(t, "price: price cannot be negative", got.Error())
}

func TestFriendlyError_PassThrough(t *testing.T) {
	err := errors.New("something else entirely")
	assert.Equal(t, err, FriendlyError(err))
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "-1", "0", "1.5"} {
		_, err := parseID(bad)
		assert.Error(t, err, "parseID(%q)", bad)
	}
}
