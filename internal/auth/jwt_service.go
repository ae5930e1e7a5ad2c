package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"donorlink/internal/model"
)

// DefaultTokenTTL is used when no TTL is configured (4 hours).
const DefaultTokenTTL = 14400 * time.Second

// Claims carries the full user record minus password, so handlers can act on
// the caller's profile without a database round trip.
type Claims struct {
	model.User
	jwt.RegisteredClaims
}

// JWTService handles bearer token issuance and verification.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a JWT service with the given secret and TTL in
// seconds. A non-positive TTL falls back to DefaultTokenTTL.
func NewJWTService(secret string, ttlSeconds int) *JWTService {
	ttl := DefaultTokenTTL
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the user. The password hash is cleared before the
// record is embedded; json:"-" already keeps it out of the payload, clearing
// it guards against future tag changes.
func (s *JWTService) Issue(user *model.User) (string, error) {
	u := *user
	u.Password = ""
	claims := &Claims{
		User: u,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a token's signature and expiry and returns the claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
