// Package auth validates the admin credential and mints bearer tokens.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// passwordLength is the required secret length. Admin secrets are fixed at
// 39 characters by configuration convention, and the length is verified
// independently of the equality check.
const passwordLength = 39

// ErrInvalidPassword is returned for every failed authentication. The
// message never reveals which check failed.
var ErrInvalidPassword = errors.New("Неверный пароль")

// Gate checks the admin password and issues opaque tokens. Tokens are not
// recorded anywhere; nothing validates them afterwards.
type Gate struct {
	secret string
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authenticate succeeds only when password equals the configured secret and
// is exactly 39 characters long. Both conditions are evaluated; a mismatch
// in either yields the same ErrInvalidPassword.
func (g *Gate) Authenticate(password string) (string, error) {
	match := subtle.ConstantTimeCompare([]byte(password), []byte(g.secret)) == 1
	if !match || len(password) != passwordLength {
		return "", ErrInvalidPassword
	}
	return newToken(), nil
}

// newToken builds an opaque token from the current timestamp and a random
// suffix: dvx_token_<unix-ms>_<9 random chars>.
func newToken() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("dvx_token_%d_%s", time.Now().UnixMilli(), suffix)
}
