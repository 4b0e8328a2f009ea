package models

import "time"

// TokenRecord is what a token manager stores for a credential scope.
type TokenRecord struct {
	Token     string    `json:"token"`
	Endpoint  string    `json:"endpoint"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// ExpiredAt reports whether the record is expired at now, treating tokens
// within leeway of their expiry as already expired. A zero ExpiresAt never expires.
func (t TokenRecord) ExpiredAt(now time.Time, leeway time.Duration) bool {
	if t.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(leeway).Before(t.ExpiresAt)
}
