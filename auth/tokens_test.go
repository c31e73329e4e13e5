package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	metadata "github.com/rotationalio/go-metadata"
	"github.com/rotationalio/go-metadata/auth"
	"github.com/stretchr/testify/require"
)

func TestBearer(t *testing.T) {
	md := metadata.New()
	_, err := auth.Bearer(md)
	require.ErrorIs(t, err, auth.ErrNoAuthorization)

	md.Set(auth.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	_, err = auth.Bearer(md)
	require.ErrorIs(t, err, auth.ErrNotBearer)

	md.Replace(auth.HeaderAuthorization, "Bearer ")
	_, err = auth.Bearer(md)
	require.ErrorIs(t, err, auth.ErrNotBearer)

	md.Replace(auth.HeaderAuthorization, "bearer abc.def.ghi")
	tks, err := auth.Bearer(md)
	require.NoError(t, err, "bearer prefix should be case insensitive")
	require.Equal(t, "abc.def.ghi", tks)
}

func TestSubject(t *testing.T) {
	tks := createToken(t, "customer-42")
	sub, err := auth.Subject(tks)
	require.NoError(t, err, "could not parse subject from token")
	require.Equal(t, "customer-42", sub)

	claims, err := auth.Parse(tks)
	require.NoError(t, err)
	require.Equal(t, "testing", claims.Issuer)

	_, err = auth.Subject(createToken(t, ""))
	require.ErrorIs(t, err, auth.ErrNoSubject)

	_, err = auth.Subject("notarealtoken")
	require.Error(t, err, "should not be able to parse a bad token")
}

func TestStampSubject(t *testing.T) {
	md := metadata.New()
	err := auth.StampSubject(md, createToken(t, "customer-42"))
	require.NoError(t, err, "could not stamp subject")

	sub, ok := md.Subject()
	require.True(t, ok)
	require.Equal(t, "customer-42", sub)

	// An existing subject is not replaced
	err = auth.StampSubject(md, createToken(t, "customer-99"))
	require.NoError(t, err)
	require.Equal(t, []string{"customer-42"}, md.Get(metadata.KeySubject))

	err = auth.StampSubject(metadata.New(), "notarealtoken")
	require.Error(t, err, "expected error for bad token")
}

func createToken(t *testing.T, subject string) string {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    "testing",
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(5 * time.Minute)),
	}

	tks, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("supersecretsquirrel"))
	require.NoError(t, err, "could not sign token")
	return tks
}
