package metadata

import "time"

// Events wrap user-defined datagrams together with the metadata that describes them.
// The datagram the event wraps is user-specific: JSON, msgpack, protocol buffers, etc.
// The metadata describes how to route and parse the event without unmarshaling it.
type Event struct {
	// Metadata are user-defined key/value pairs added to the event; CloudEvents context
	// attributes are stored using the ce- prefixed keys.
	Metadata *Metadata

	// Data is the datagram payload that defines the event.
	Data []byte

	// Created is the timestamp that the event was created according to the client clock.
	Created time.Time
}

// NewEvent returns an event with empty metadata wrapping the data.
func NewEvent(data []byte) *Event {
	return &Event{
		Metadata: New(),
		Data:     data,
		Created:  time.Now(),
	}
}

// Subject returns the subject of the event from its metadata.
func (e *Event) Subject() (string, bool) {
	if e.Metadata == nil {
		return "", false
	}
	return e.Metadata.Subject()
}

// Clone returns a copy of the event with its own metadata and data.
func (e *Event) Clone() *Event {
	c := &Event{
		Metadata: e.Metadata.Clone(),
		Created:  e.Created,
	}

	if e.Data != nil {
		c.Data = make([]byte, len(e.Data))
		copy(c.Data, e.Data)
	}
	return c
}
