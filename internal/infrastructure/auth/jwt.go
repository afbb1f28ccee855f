package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the only error Verify returns. Bad signatures, expired
// tokens and malformed payloads are not distinguished.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the username in "sub" and the numeric user ID in "id".
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// Identity is the verified caller extracted from a token.
type Identity struct {
	UserID    uint
	Username  string
	ExpiresAt time.Time
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService returns an HS256 issuer/verifier. The secret must be non-empty.
func NewJWTService(secret string, accessExpMinutes int) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if accessExpMinutes <= 0 {
		return nil, fmt.Errorf("jwt access expiry must be positive, got %d minutes", accessExpMinutes)
	}

	s := &JWTService{
		secret: []byte(secret),
		ttl:    time.Duration(accessExpMinutes) * time.Minute,
		now:    func() time.Time { return time.Now().UTC() },
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s, nil
}

// TTL returns the lifetime of issued access tokens.
func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the user valid for ttl.
func (s *JWTService) Issue(username string, userID uint, ttl time.Duration) (string, error) {
	if username == "" || userID == 0 {
		return "", errors.New("username and user id are required")
	}

	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the identity.
// Tokens without a subject or user ID are rejected.
func (s *JWTService) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.UserID == 0 || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:    claims.UserID,
		Username:  claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
