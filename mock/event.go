package mock

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	metadata "github.com/rotationalio/go-metadata"
)

var defaultFactory *EventFactory = &EventFactory{
	Source:   "mock",
	Type:     "random",
	Subjects: []string{"alpha", "bravo", "charlie"},
}

// NewEvent returns an event with random data and complete CloudEvents metadata. It is a
// quick method to create an event from the default factory.
func NewEvent() *metadata.Event {
	return defaultFactory.Make()
}

// EventFactory creates random events with standard defaults. Subjects are assigned to
// events in round-robin order; if there are no subjects the events have no subject.
type EventFactory struct {
	sync.Mutex
	Source   string
	Type     string
	Subjects []string
	Size     int
	offset   uint64
}

func (f *EventFactory) Make() *metadata.Event {
	f.Lock()
	defer f.Unlock()
	f.offset++

	size := f.Size
	if size <= 0 {
		size = 256
	}

	created := time.Now().Add(time.Duration(-1*rand.Int63n(10000)) * time.Millisecond).UTC()
	e := &metadata.Event{
		Metadata: metadata.New(),
		Data:     make([]byte, size),
		Created:  created,
	}
	rand.Read(e.Data)

	md := e.Metadata
	md.Set(metadata.KeyID, ulid.MustNew(ulid.Timestamp(created), ulid.DefaultEntropy()).String())
	md.Set(metadata.KeySource, f.Source)
	md.Set(metadata.KeySpecVersion, metadata.SpecVersion)
	md.Set(metadata.KeyType, f.Type)
	md.Set(metadata.KeyTime, created.Format(time.RFC3339Nano))
	md.Set(metadata.KeyDataContentType, "application/octet-stream")
	md.Set("length", strconv.Itoa(size))
	md.Set("offset", strconv.FormatUint(f.offset, 10))

	if len(f.Subjects) > 0 {
		md.Set(metadata.KeySubject, f.Subjects[(f.offset-1)%uint64(len(f.Subjects))])
	}
	return e
}
