package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	metadata "github.com/rotationalio/go-metadata"
)

const (
	HeaderAuthorization = "authorization"
	BearerPrefix        = "Bearer "
)

// Bearer returns the token from the first authorization value in the metadata.
func Bearer(md *metadata.Metadata) (string, error) {
	auth, ok := md.First(HeaderAuthorization)
	if !ok {
		return "", ErrNoAuthorization
	}

	if len(auth) < len(BearerPrefix) || !strings.EqualFold(auth[:len(BearerPrefix)], BearerPrefix) {
		return "", ErrNotBearer
	}

	token := strings.TrimSpace(auth[len(BearerPrefix):])
	if token == "" {
		return "", ErrNotBearer
	}
	return token, nil
}

// Parse the claims of a JWT without verifying its signature. The signature must be
// verified by the server that accepts the token; this is only used to read claims.
func Parse(tkn string) (claims *jwt.RegisteredClaims, err error) {
	claims = &jwt.RegisteredClaims{}
	if _, _, err = jwt.NewParser().ParseUnverified(tkn, claims); err != nil {
		return nil, fmt.Errorf("could not parse token: %w", err)
	}
	return claims, nil
}

// Subject returns the sub claim of the JWT.
func Subject(tkn string) (string, error) {
	claims, err := Parse(tkn)
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", ErrNoSubject
	}
	return claims.Subject, nil
}

// StampSubject sets the ce-subject of the metadata to the subject of the token if the
// metadata does not already have a subject.
func StampSubject(md *metadata.Metadata, tkn string) error {
	if _, ok := md.Subject(); ok {
		return nil
	}

	sub, err := Subject(tkn)
	if err != nil {
		return err
	}

	md.Set(metadata.KeySubject, sub)
	return nil
}
