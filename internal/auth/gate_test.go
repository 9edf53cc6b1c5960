package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvxstudio/backend/internal/auth"
)

// 39 characters, matching the configuration convention.
const secret = "dvx_studio_admin_password_2025_secret39"

func TestAuthenticateSuccess(t *testing.T) {
	gate := auth.NewGate(secret)

	token, err := gate.Authenticate(secret)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(token, "dvx_token_"), "token %q", token)
	parts := strings.Split(token, "_")
	require.Len(t, parts, 4)
	assert.Len(t, parts[3], 9)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	gate := auth.NewGate(secret)

	_, err := gate.Authenticate("not_the_password_but_exactly_39_chars!!")
	assert.ErrorIs(t, err, auth.ErrInvalidPassword)

	_, err = gate.Authenticate("")
	assert.ErrorIs(t, err, auth.ErrInvalidPassword)
}

func TestAuthenticateLengthCheckedIndependently(t *testing.T) {
	// A secret that violates the 39-char convention can never authenticate:
	// equality holds but the length check still fails.
	short := "short_secret"
	gate := auth.NewGate(short)

	_, err := gate.Authenticate(short)
	assert.ErrorIs(t, err, auth.ErrInvalidPassword)
}

func TestTokensAreUnique(t *testing.T) {
	gate := auth.NewGate(secret)

	a, err := gate.Authenticate(secret)
	require.NoError(t, err)
	b, err := gate.Authenticate(secret)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
