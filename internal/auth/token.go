// Package auth issues and verifies session tokens.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/models"
)

// Session is the authenticated caller carried through request handling.
type Session struct {
	UserID  int64
	Login   string
	Role    models.Role
	TokenID string
	Expires time.Time
}

func (s Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

type Claims struct {
	UserID int64       `json:"user_id"`
	Login  string      `json:"login"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for user. The role claim is the only source of the
// caller's role.
func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	now := i.now()
	claims := Claims{
		UserID: user.ID,
		Login:  user.Login,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("could not create token: %w", err)
	}
	return signed, nil
}

func (i *TokenIssuer) Parse(tokenString string) (Session, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return Session{}, apperrors.ErrInvalidToken
	}

	if claims.UserID == 0 || claims.ID == "" {
		return Session{}, apperrors.ErrInvalidToken
	}
	switch claims.Role {
	case models.RoleTutor, models.RoleAdmin:
	default:
		return Session{}, apperrors.ErrInvalidToken
	}

	s := Session{
		UserID:  claims.UserID,
		Login:   claims.Login,
		Role:    claims.Role,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		s.Expires = claims.ExpiresAt.Time
	}
	return s, nil
}
