package metadata

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Stamper fills in the required CloudEvents attributes on metadata that is missing
// them so that it can be validated and forwarded. Attributes that are already set are
// never overwritten.
type Stamper struct {
	conf Config
}

// NewStamper creates a stamper from the environment and the specified options.
func NewStamper(opts ...Option) (_ *Stamper, err error) {
	s := &Stamper{}
	if s.conf, err = NewConfig(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns the configuration the stamper was created with.
func (s *Stamper) Config() Config {
	return s.conf
}

// Stamp sets the ce-id, ce-source, ce-specversion and ce-time attributes if they are
// missing, as well as ce-type and ce-datacontenttype if defaults are configured. The
// same metadata is returned for chaining.
func (s *Stamper) Stamp(md *Metadata) *Metadata {
	now := s.conf.Now()

	if !md.Has(KeyID) {
		md.Set(KeyID, ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String())
	}

	setDefault(md, KeySource, s.conf.Source)
	setDefault(md, KeySpecVersion, s.conf.SpecVersion)
	setDefault(md, KeyType, s.conf.Type)
	setDefault(md, KeyDataContentType, s.conf.ContentType)

	if !md.Has(KeyTime) {
		md.Set(KeyTime, now.Format(time.RFC3339Nano))
	}
	return md
}

// NewEvent creates an event wrapping the data with freshly stamped metadata.
func (s *Stamper) NewEvent(data []byte) *Event {
	event := &Event{
		Metadata: New(),
		Data:     data,
	}

	s.Stamp(event.Metadata)
	event.Created, _ = event.Metadata.Time()
	return event
}

func setDefault(md *Metadata, key, value string) {
	if value != "" && !md.Has(key) {
		md.Set(key, value)
	}
}
