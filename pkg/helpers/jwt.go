package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and verifies bearer tokens. The secret is supplied at
// construction; there is no package-level fallback, so rotating the secret
// means constructing a new manager (and invalidating everything issued
// before it).
type JWTManager struct {
	secret []byte
}

var ErrInvalidToken = errors.New("invalid token")

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

// Claims binds a token to a subject and a purpose. Purpose scopes what the
// token may be used for; the only purpose issued today is "auth".
type Claims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given subject and purpose. Nothing is
// persisted here; callers register the token with the session registry.
func (m *JWTManager) Issue(subjectID, purpose string) (string, error) {
	claims := &Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  subjectID,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string. Malformed input, a bad
// signature, or a non-HMAC signing method all yield ErrInvalidToken; Verify
// never panics on garbage input.
func (m *JWTManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
