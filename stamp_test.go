package metadata_test

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	metadata "github.com/rotationalio/go-metadata"
	"github.com/stretchr/testify/require"
)

func TestStamp(t *testing.T) {
	t.Cleanup(cleanupEnv())
	unsetEnv()

	ts := time.Date(2023, 4, 4, 13, 35, 30, 0, time.UTC)
	stamper, err := metadata.NewStamper(
		metadata.WithSource("/testing"),
		metadata.WithType("com.example.created"),
		metadata.WithContentType("application/json"),
		metadata.WithClock(func() time.Time { return ts }),
	)
	require.NoError(t, err, "could not create stamper")
	require.Equal(t, "/testing", stamper.Config().Source)

	meta := stamper.Stamp(metadata.New())
	require.NoError(t, meta.Validate(), "stamped metadata should be valid")

	id, _ := meta.ID()
	uid, err := ulid.Parse(id)
	require.NoError(t, err, "expected ce-id to be a ulid")
	require.Equal(t, ulid.Timestamp(ts), uid.Time())

	stamped, err := meta.Time()
	require.NoError(t, err)
	require.True(t, ts.Equal(stamped))

	contentType, _ := meta.DataContentType()
	require.Equal(t, "application/json", contentType)

	// Stamping again should not change or append to any attribute
	before := meta.String()
	stamper.Stamp(meta)
	require.Equal(t, before, meta.String(), "stamp should be idempotent")
}

func TestStampNoOverwrite(t *testing.T) {
	t.Cleanup(cleanupEnv())
	unsetEnv()

	stamper, err := metadata.NewStamper(metadata.WithSource("/testing"))
	require.NoError(t, err, "could not create stamper")

	meta := metadata.New()
	meta.Set(metadata.KeyID, "1234")
	meta.Set(metadata.KeySource, "/original")
	meta.Set(metadata.KeySubject, "hello1")
	stamper.Stamp(meta)

	require.Equal(t, []string{"1234"}, meta.Get(metadata.KeyID))
	require.Equal(t, []string{"/original"}, meta.Get(metadata.KeySource))
	require.Equal(t, []string{"hello1"}, meta.Get(metadata.KeySubject))
	require.False(t, meta.Has(metadata.KeyType), "no type should be stamped without a default")
	require.False(t, meta.Has(metadata.KeyDataContentType), "no content type should be stamped without a default")
	require.ErrorIs(t, meta.Validate(), metadata.ErrMissingType)

	_, err = metadata.NewStamper()
	require.ErrorIs(t, err, metadata.ErrDefaultSource)
}

func TestStamperNewEvent(t *testing.T) {
	t.Cleanup(cleanupEnv())
	unsetEnv()

	stamper, err := metadata.NewStamper(metadata.WithSource("/testing"), metadata.WithType("com.example.created"))
	require.NoError(t, err, "could not create stamper")

	event := stamper.NewEvent([]byte("hello world"))
	require.Equal(t, []byte("hello world"), event.Data)
	require.NoError(t, event.Metadata.Validate())

	stamped, err := event.Metadata.Time()
	require.NoError(t, err)
	require.True(t, stamped.Equal(event.Created), "expected created to match ce-time")
}
