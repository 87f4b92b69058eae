package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/fleetops/internal/model"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseValidToken(t *testing.T) {
	parser := NewParser(testSecret)
	userID := uuid.New()

	tokenString := signToken(t, Claims{
		UserID: userID,
		Name:   "Dana",
		Role:   model.RoleDispatcher,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	principal, err := parser.Parse(tokenString)

	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, "Dana", principal.Name)
	assert.Equal(t, model.RoleDispatcher, principal.Role)
}

func TestParseExpiredToken(t *testing.T) {
	parser := NewParser(testSecret)

	tokenString := signToken(t, Claims{
		UserID: uuid.New(),
		Role:   model.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, testSecret)

	_, err := parser.Parse(tokenString)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	parser := NewParser(testSecret)

	tokenString := signToken(t, Claims{
		UserID: uuid.New(),
		Role:   model.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, "other-secret")

	_, err := parser.Parse(tokenString)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseMissingUserID(t *testing.T) {
	parser := NewParser(testSecret)

	tokenString := signToken(t, Claims{
		Role: model.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, testSecret)

	_, err := parser.Parse(tokenString)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
