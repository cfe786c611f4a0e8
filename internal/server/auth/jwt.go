// Package auth implements the signed identity token used by the API:
// issuing, verification, and bearer-header extraction.
package auth

import (
	"errors"
	"time"

	"moodblog/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token claim set: the registered iat/exp pair plus the
// custom user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64
}

// Codec signs and verifies identity tokens (HS256). The secret and token
// lifetime are fixed at construction; a Codec is safe for concurrent use.
type Codec struct {
	secret   []byte
	validity time.Duration
}

// NewCodec builds a Codec with the given signing secret and token lifetime.
func NewCodec(secret []byte, validity time.Duration) *Codec {
	return &Codec{secret: secret, validity: validity}
}

// Issue produces a signed token for userID, valid from now until
// now+validity.
func (c *Codec) Issue(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify parses and validates tokenString and returns the user id it was
// issued for. Failures map onto the sentinel taxonomy: ErrTokenExpired,
// ErrInvalidSignature, or ErrTokenMalformed for anything unparsable.
func (c *Codec) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, common.ErrInvalidSignature
		default:
			return 0, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return 0, common.ErrTokenMalformed
	}

	return claims.UserID, nil
}
