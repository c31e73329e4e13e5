package metadata

import (
	"fmt"
	"time"
)

// Keys of the CloudEvents context attributes when they are carried as metadata, e.g.
// in the binary content mode of the HTTP and gRPC protocol bindings.
const (
	KeyID              = "ce-id"
	KeySource          = "ce-source"
	KeySpecVersion     = "ce-specversion"
	KeyType            = "ce-type"
	KeySubject         = "ce-subject"
	KeyTime            = "ce-time"
	KeyDataContentType = "ce-datacontenttype"
	KeyDataSchema      = "ce-dataschema"
)

// AttributePrefix is shared by all CloudEvents context attribute keys.
const AttributePrefix = "ce-"

// SpecVersion is the only CloudEvents specification version that is supported.
const SpecVersion = "1.0"

// Subject returns the first value of the ce-subject attribute, which identifies the
// entity that the event is about (e.g. for routing). If no subject has been set an
// empty string and false are returned.
func (m *Metadata) Subject() (string, bool) {
	return m.First(KeySubject)
}

// ID returns the first value of the ce-id attribute.
func (m *Metadata) ID() (string, bool) {
	return m.First(KeyID)
}

// Source returns the first value of the ce-source attribute.
func (m *Metadata) Source() (string, bool) {
	return m.First(KeySource)
}

// SpecVersion returns the first value of the ce-specversion attribute.
func (m *Metadata) SpecVersion() (string, bool) {
	return m.First(KeySpecVersion)
}

// Type returns the first value of the ce-type attribute.
func (m *Metadata) Type() (string, bool) {
	return m.First(KeyType)
}

// DataContentType returns the first value of the ce-datacontenttype attribute.
func (m *Metadata) DataContentType() (string, bool) {
	return m.First(KeyDataContentType)
}

// DataSchema returns the first value of the ce-dataschema attribute.
func (m *Metadata) DataSchema() (string, bool) {
	return m.First(KeyDataSchema)
}

// Time parses the first value of the ce-time attribute as an RFC 3339 timestamp.
// ErrNoAttribute is returned if the attribute has not been set.
func (m *Metadata) Time() (ts time.Time, err error) {
	val, ok := m.First(KeyTime)
	if !ok {
		return time.Time{}, ErrNoAttribute
	}

	if ts, err = time.Parse(time.RFC3339Nano, val); err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidTime, err)
	}
	return ts, nil
}

// Validate checks that the required CloudEvents context attributes are set and that
// the optional attributes that have a format can be parsed.
func (m *Metadata) Validate() (err error) {
	if !m.Has(KeyID) {
		return ErrMissingID
	}

	if !m.Has(KeySource) {
		return ErrMissingSource
	}

	version, ok := m.SpecVersion()
	if !ok {
		return ErrMissingSpecVersion
	}

	if version != SpecVersion {
		return ErrUnsupportedVersion
	}

	if !m.Has(KeyType) {
		return ErrMissingType
	}

	if m.Has(KeyTime) {
		if _, err = m.Time(); err != nil {
			return err
		}
	}
	return nil
}
