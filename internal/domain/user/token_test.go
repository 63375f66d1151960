package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret")

func TestIssueAndValidateToken(t *testing.T) {
	raw, err := IssueToken(testSecret, &User{ID: 7, Login: "anna", Role: RoleTutor})
	require.NoError(t, err)

	id, role, err := ValidateToken(testSecret, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, RoleTutor, role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	raw, err := IssueToken(testSecret, &User{ID: 7, Role: RoleTutor})
	require.NoError(t, err)

	_, _, err = ValidateToken([]byte("other-secret"), raw)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := Claims{
		Role: RoleTutor,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, _, err = ValidateToken(testSecret, raw)
	assert.Error(t, err)
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	// alg=none tokens must never validate.
	claims := Claims{Role: RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = ValidateToken(testSecret, raw)
	assert.Error(t, err)
}

func TestSessionFromToken(t *testing.T) {
	raw, err := IssueToken(testSecret, &User{ID: 12, Login: "anna", Role: RoleLearner})
	require.NoError(t, err)

	sess, err := SessionFromToken(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, sess.Token)
	assert.Equal(t, int64(12), sess.UserID)
	assert.Equal(t, RoleLearner, sess.Role)
	assert.True(t, sess.Authenticated())
}

func TestSessionFromToken_Garbage(t *testing.T) {
	_, err := SessionFromToken("not-a-token")
	assert.Error(t, err)

	var empty Session
	assert.False(t, empty.Authenticated())
}
