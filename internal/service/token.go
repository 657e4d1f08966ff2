package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hr-records/internal/model"
)

// SessionTTL is fixed: callers re-authenticate after it elapses, there is
// no refresh mechanism.
const SessionTTL = 2 * time.Hour

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the compact session tokens handed out
// at login. Verification is pure computation against the server secret.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

func (s *TokenService) Issue(userID string, username string) (string, error) {
	now := s.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	})
	return token.SignedString(s.secret)
}

// Verify checks signature integrity and expiry and reconstructs the claim.
// A tampered, malformed or expired token never yields a claim.
func (s *TokenService) Verify(tokenString string) (*model.SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(tokenString), &sessionClaims{},
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return nil, model.ErrInvalidToken
	}

	return &model.SessionClaims{
		UserID:    claims.Subject,
		Username:  claims.Username,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
