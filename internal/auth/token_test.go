package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/models"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	for _, role := range []models.Role{models.RoleTutor, models.RoleAdmin} {
		token, err := issuer.Issue(&models.User{ID: 7, Login: "alice", Role: role})
		require.NoError(t, err)

		s, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), s.UserID)
		assert.Equal(t, "alice", s.Login)
		assert.Equal(t, role, s.Role)
		assert.Equal(t, role == models.RoleAdmin, s.IsAdmin())
		assert.NotEmpty(t, s.TokenID)
		assert.WithinDuration(t, time.Now().Add(time.Hour), s.Expires, 5*time.Second)
	}
}

func TestTokenIssuer_UniqueTokenIDs(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	user := &models.User{ID: 1, Login: "alice", Role: models.RoleTutor}

	a, err := issuer.Issue(user)
	require.NoError(t, err)
	b, err := issuer.Issue(user)
	require.NoError(t, err)

	sa, _ := issuer.Parse(a)
	sb, _ := issuer.Parse(b)
	assert.NotEqual(t, sa.TokenID, sb.TokenID)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	user := &models.User{ID: 1, Login: "alice", Role: models.RoleTutor}

	otherKey, err := NewTokenIssuer("other", time.Hour).Issue(user)
	require.NoError(t, err)

	expiredIssuer := NewTokenIssuer("secret", time.Hour)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredIssuer.Issue(user)
	require.NoError(t, err)

	badRole, err := issuer.Issue(&models.User{ID: 1, Login: "alice", Role: "superuser"})
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1, "role": "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"wrong key":    otherKey,
		"expired":      expired,
		"unknown role": badRole,
		"none alg":     noneAlg,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.Parse(token)
			assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
			assert.ErrorIs(t, err, apperrors.ErrNotAuthorized)
		})
	}
}
