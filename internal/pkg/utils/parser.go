package utils

import (
	"errors"
	"mrn-validator-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ParseMRNList splits a comma delimited MRN string into trimmed, non-empty
// tokens, keeping input order and duplicates.
func ParseMRNList(raw string) []string {
	parts := strings.Split(raw, constvars.MrnListSeparator)
	mrns := make([]string, 0, len(parts))
	for _, part := range parts {
		mrn := strings.TrimSpace(part)
		if mrn == "" {
			continue
		}
		mrns = append(mrns, mrn)
	}
	return mrns
}

// ParseJWTExpiry reads the exp claim of a JWT without verifying its
// signature. ok is false when the token is not a JWT or carries no exp.
func ParseJWTExpiry(tokenString string) (expiresAt time.Time, ok bool) {
	if strings.Count(tokenString, ".") != 2 {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return time.Time{}, false
	}

	exp, ok := claims["exp"]
	if !ok {
		return time.Time{}, false
	}

	switch value := exp.(type) {
	case float64:
		return time.Unix(int64(value), 0), true
	default:
		return time.Time{}, false
	}
}

var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an Authorization header value.
func ParseBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
		return "", ErrInvalidAuthorizationHeader
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix))
	if token == "" {
		return "", ErrInvalidAuthorizationHeader
	}
	return token, nil
}
