package user

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by the bearer token. The role claim is what the route
// guard reads; the backend re-validates it on every call.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

const tokenTTL = 24 * time.Hour

// IssueToken signs a token for the user with HS256.
func IssueToken(secret []byte, u *User) (string, error) {
	claims := Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken verifies the signature and expiry and returns the user id
// and role.
func ValidateToken(secret []byte, raw string) (int64, Role, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return 0, "", fmt.Errorf("invalid token")
	}
	uid, err := claims.GetSubject()
	if err != nil {
		return 0, "", fmt.Errorf("token has no subject: %w", err)
	}
	var id int64
	if _, err := fmt.Sscanf(uid, "%d", &id); err != nil {
		return 0, "", fmt.Errorf("malformed subject %q: %w", uid, err)
	}
	return id, claims.Role, nil
}

// SessionFromToken decodes the claims without verifying the signature. The
// client is not a trust boundary: it only needs the role for navigation
// decisions, and every request is re-checked server-side.
func SessionFromToken(raw string) (Session, error) {
	var claims Claims
	_, _, err := jwt.NewParser().ParseUnverified(raw, &claims)
	if err != nil {
		return Session{}, fmt.Errorf("malformed token: %w", err)
	}
	sess := Session{Token: raw, Role: claims.Role}
	if sub, err := claims.GetSubject(); err == nil {
		fmt.Sscanf(sub, "%d", &sess.UserID)
	}
	return sess, nil
}
