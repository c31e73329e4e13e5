package auth

import "errors"

var (
	ErrNoAuthorization = errors.New("no authorization in metadata")
	ErrNotBearer       = errors.New("authorization is not a bearer token")
	ErrNoSubject       = errors.New("token does not have a subject claim")
)
