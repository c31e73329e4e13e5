package auth

import (
	"context"

	metadata "github.com/rotationalio/go-metadata"
	"google.golang.org/grpc"
)

// Credentials implement the credentials.PerRPCCredentials interface so that an access
// token and a set of metadata can be embedded in the request metadata of each RPC call.
// PerRPCCredentials only support a single value per key, so only the first value of
// each metadata key is sent. Insecure should almost always be false; the only exception
// is when doing local development or in CI tests.
type Credentials struct {
	accessToken string
	md          *metadata.Metadata
	insecure    bool
}

// NewCredentials creates credentials from the access token and the metadata; either
// may be empty. The metadata is copied so later changes are not sent.
func NewCredentials(accessToken string, md *metadata.Metadata, insecure bool) *Credentials {
	return &Credentials{accessToken: accessToken, md: md.Clone(), insecure: insecure}
}

// GetRequestMetadata attaches the bearer access token to the authorization header along
// with the first value of every metadata key.
func (t *Credentials) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	out := make(map[string]string)
	if t.md != nil {
		t.md.Range(func(key string, values []string) bool {
			out[key] = values[0]
			return true
		})
	}

	if t.accessToken != "" {
		out[HeaderAuthorization] = BearerPrefix + t.accessToken
	}
	return out, nil
}

// RequireTransportSecurity should almost always return true unless accessing a local
// server in development or CI environments.
func (t *Credentials) RequireTransportSecurity() bool {
	return !t.insecure
}

// Equals compares credentials (primarily used for testing).
func (t *Credentials) Equals(o *Credentials) bool {
	if t.accessToken != o.accessToken || t.insecure != o.insecure {
		return false
	}
	if t.md.Len() == 0 || o.md.Len() == 0 {
		return t.md.Len() == o.md.Len()
	}
	return t.md.String() == o.md.String()
}

// PerRPC returns a CallOption to attach the token and metadata to a single RPC call.
// Because access tokens expire and need to be refreshed; this is the preferred way of
// attaching credentials to an RPC call.
func PerRPC(accessToken string, md *metadata.Metadata, insecure bool) grpc.CallOption {
	return grpc.PerRPCCredentials(NewCredentials(accessToken, md, insecure))
}

// WithPerRPC returns a DialOption to ensure that the credentials are attached to every
// RPC call but only have to be specified once by the dialer.
func WithPerRPC(accessToken string, md *metadata.Metadata, insecure bool) grpc.DialOption {
	return grpc.WithPerRPCCredentials(NewCredentials(accessToken, md, insecure))
}
