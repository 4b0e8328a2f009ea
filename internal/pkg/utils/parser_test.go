package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMRNList(t *testing.T) {
	t.Run("Trims and drops empty tokens", func(t *testing.T) {
		assert.Equal(t, []string{"111", "222", "333"}, ParseMRNList(" 111 ,222,, 333 ,"))
	})

	t.Run("Keeps order and duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"222", "111", "222"}, ParseMRNList("222,111,222"))
	})

	t.Run("Empty input", func(t *testing.T) {
		assert.Empty(t, ParseMRNList(""))
		assert.Empty(t, ParseMRNList(" , ,"))
	})

	t.Run("Single value without separator", func(t *testing.T) {
		assert.Equal(t, []string{"A-0001"}, ParseMRNList("A-0001"))
	})
}

func TestParseJWTExpiry(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)

	got, ok := ParseJWTExpiry(signed)
	assert.True(t, ok)
	assert.True(t, exp.Equal(got))

	withoutExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok = ParseJWTExpiry(withoutExp)
	assert.False(t, ok)

	_, ok = ParseJWTExpiry("opaque-token")
	assert.False(t, ok)

	_, ok = ParseJWTExpiry("a.b.c")
	assert.False(t, ok)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = ParseBearerToken("Basic abc")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = ParseBearerToken("Bearer ")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
}
