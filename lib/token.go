package lib

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
)

// SessionKeyHeader carries the anonymous cart session key on storefront
// requests.
const SessionKeyHeader = "X-Session-Key"

var ErrMissingSessionKey = errors.New("missing session key")

// GetSessionKey extracts the cart session key from the request headers.
func GetSessionKey(r *http.Request) (string, error) {
	key := r.Header.Get(SessionKeyHeader)
	if key == "" {
		return "", ErrMissingSessionKey
	}
	return key, nil
}

// GenerateRandomToken generates a cryptographically secure random token,
// used for anonymous cart session keys.
func GenerateRandomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
