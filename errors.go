package metadata

import "errors"

var (
	ErrNoAttribute        = errors.New("attribute not found in metadata")
	ErrMissingID          = errors.New("invalid metadata: ce-id is required")
	ErrMissingSource      = errors.New("invalid metadata: ce-source is required")
	ErrMissingSpecVersion = errors.New("invalid metadata: ce-specversion is required")
	ErrMissingType        = errors.New("invalid metadata: ce-type is required")
	ErrUnsupportedVersion = errors.New("invalid metadata: unsupported ce-specversion")
	ErrInvalidTime        = errors.New("invalid metadata: ce-time is not an RFC 3339 timestamp")
	ErrDefaultSource      = errors.New("invalid options: a default source is required")
	ErrDefaultVersion     = errors.New("invalid options: unsupported spec version")
	ErrMissingClock       = errors.New("invalid options: clock is required")
	ErrNoMetadata         = errors.New("no metadata in context")
)
