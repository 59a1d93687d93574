package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	ast := assert.New(t)
	svc := NewTokenService([]byte("test-secret"), time.Minute)

	token, err := svc.Issue("a@x.com")
	ast.NoError(err)
	ast.NotEmpty(token)

	sub, ok := svc.Verify(token)
	ast.True(ok)
	ast.Equal("a@x.com", sub)
}

func TestTokenExpired(t *testing.T) {
	ast := assert.New(t)
	svc := NewTokenService([]byte("test-secret"), time.Minute)

	// 署名が正しくても過去の exp は常に拒否
	token, err := svc.IssueWithTTL("a@x.com", -time.Minute)
	ast.NoError(err)

	_, ok := svc.Verify(token)
	ast.False(ok)
}

func TestTokenTampered(t *testing.T) {
	ast := assert.New(t)
	svc := NewTokenService([]byte("test-secret"), time.Minute)

	token, err := svc.Issue("a@x.com")
	ast.NoError(err)

	tampered := token[:len(token)-2] + "xx"
	_, ok := svc.Verify(tampered)
	ast.False(ok)
}

func TestTokenWrongSecret(t *testing.T) {
	ast := assert.New(t)
	issuer := NewTokenService([]byte("secret-a"), time.Minute)
	verifier := NewTokenService([]byte("secret-b"), time.Minute)

	token, err := issuer.Issue("a@x.com")
	ast.NoError(err)

	_, ok := verifier.Verify(token)
	ast.False(ok)
}

func TestTokenMalformed(t *testing.T) {
	ast := assert.New(t)
	svc := NewTokenService([]byte("test-secret"), time.Minute)

	for _, v := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, ok := svc.Verify(v)
		ast.False(ok, v)
	}
}

func TestTokenNoneAlgRejected(t *testing.T) {
	ast := assert.New(t)
	svc := NewTokenService([]byte("test-secret"), time.Minute)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	ast.NoError(err)

	_, ok := svc.Verify(token)
	ast.False(ok)
}

func TestTokenMissingSubject(t *testing.T) {
	ast := assert.New(t)
	svc := NewTokenService([]byte("test-secret"), time.Minute)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	token, err := signed.SignedString([]byte("test-secret"))
	ast.NoError(err)

	_, ok := svc.Verify(token)
	ast.False(ok)
}
