package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkrahl/educahub-backend/internal/token"
)

func TestNewCodec_EmptySecret(t *testing.T) {
	codec, err := token.NewCodec("")
	assert.Error(t, err)
	assert.Nil(t, codec)
}

func TestCodec_IssueVerify_Roundtrip(t *testing.T) {
	codec, err := token.NewCodec("unit-test-secret")
	require.NoError(t, err)

	signed, err := codec.Issue("alice", true)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := codec.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Contains(t, claims.Audience, token.Audience)
	assert.Equal(t, token.Issuer, claims.Issuer)

	// Expiry should land roughly Validity from now.
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, token.Validity.Seconds(), remaining.Seconds(), 60)
}

func TestCodec_Issue_EmptyUsername(t *testing.T) {
	codec, err := token.NewCodec("unit-test-secret")
	require.NoError(t, err)

	_, err = codec.Issue("", false)
	assert.Error(t, err)
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	issuer, err := token.NewCodec("secret-a")
	require.NoError(t, err)
	verifier, err := token.NewCodec("secret-b")
	require.NoError(t, err)

	signed, err := issuer.Issue("alice", false)
	require.NoError(t, err)

	claims, err := verifier.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestCodec_Verify_Garbage(t *testing.T) {
	codec, err := token.NewCodec("unit-test-secret")
	require.NoError(t, err)

	_, err = codec.Verify("not-a-token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Verify_WrongAudience(t *testing.T) {
	secret := "unit-test-secret"
	codec, err := token.NewCodec(secret)
	require.NoError(t, err)

	// A token signed with the right key but aimed at some other audience
	// must not authenticate here.
	claims := token.Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{"https://some-other-api.example/"},
			Issuer:    token.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Verify_WrongIssuer(t *testing.T) {
	secret := "unit-test-secret"
	codec, err := token.NewCodec(secret)
	require.NoError(t, err)

	claims := token.Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{token.Audience},
			Issuer:    "https://some-other-issuer.example/",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Verify_Expired(t *testing.T) {
	secret := "unit-test-secret"
	codec, err := token.NewCodec(secret)
	require.NoError(t, err)

	claims := token.Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{token.Audience},
			Issuer:    token.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Verify_UnsignedAlgorithmRejected(t *testing.T) {
	codec, err := token.NewCodec("unit-test-secret")
	require.NoError(t, err)

	claims := token.Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{token.Audience},
			Issuer:    token.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Verify_MissingUsername(t *testing.T) {
	secret := "unit-test-secret"
	codec, err := token.NewCodec(secret)
	require.NoError(t, err)

	claims := token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{token.Audience},
			Issuer:    token.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
