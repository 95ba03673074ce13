package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petsparadise/petsparadise/internal/model"
)

func TestIssueAndVerifyToken(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	identity := model.Identity{AdminID: "admin-123", Username: "shelter"}

	tok, err := IssueToken(identity, secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := IssueToken(model.Identity{AdminID: "a1", Username: "u"}, secret, -time.Second)
	require.NoError(t, err)

	_, err = VerifyToken(tok, secret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken(model.Identity{AdminID: "a2", Username: "u"}, []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("wrong-secret"))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	// Expired AND tampered: the signature failure must win over expiry.
	tok, err := IssueToken(model.Identity{AdminID: "a3", Username: "u"}, secret, -time.Second)
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = VerifyToken(tampered, secret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("not.a.jwt", []byte("k"))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
