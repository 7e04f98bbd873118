package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptyToken   = errors.New("empty token")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims mirrors the access token issued by the bookstore backend
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Type   string `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token carries the admin role
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

// Inspector reads access tokens held by storefront sessions.
//
// The storefront does not issue tokens. With an empty secret it only decodes
// the claims and checks expiry; with a secret it also verifies the HS256
// signature.
type Inspector struct {
	secret []byte
	now    func() time.Time
}

// NewInspector creates token inspector
func NewInspector(secret string) *Inspector {
	return &Inspector{secret: []byte(secret), now: time.Now}
}

// Verifies reports whether signatures are checked
func (i *Inspector) Verifies() bool {
	return len(i.secret) > 0
}

// Inspect parses token and rejects it when expired or (if verifying) unsigned
func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &Claims{}
	if i.Verifies() {
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			// Verify signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return i.secret, nil
		}, jwt.WithTimeFunc(i.now))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return nil, ErrTokenExpired
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		if !token.Valid {
			return nil, ErrInvalidToken
		}
		return claims, nil
	}

	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ExpiresAt != nil && !i.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// IsAuthenticated reports whether token is usable for an authenticated call
func (i *Inspector) IsAuthenticated(tokenString string) bool {
	_, err := i.Inspect(tokenString)
	return err == nil
}
