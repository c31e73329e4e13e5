package metadata_test

import (
	"fmt"
	"testing"

	metadata "github.com/rotationalio/go-metadata"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	meta := metadata.New()
	require.Equal(t, uint32(0), meta.Partition(8), "expected shard 0 without subject or id")

	meta.Set(metadata.KeyID, "01H1PA4FA9G2Y79Z5FC36CWYYJ")
	byID := meta.Partition(8)
	require.Less(t, byID, uint32(8))

	meta.Set(metadata.KeySubject, "customer-42")
	shard := meta.Partition(8)
	require.Less(t, shard, uint32(8))
	require.Equal(t, uint32(0), meta.Partition(0), "expected shard 0 when there are no partitions")

	// Metadata with the same subject always land on the same shard
	for i := 0; i < 16; i++ {
		other := metadata.New()
		other.Set(metadata.KeyID, fmt.Sprintf("event-%d", i))
		other.Set(metadata.KeySubject, "customer-42")
		require.Equal(t, shard, other.Partition(8), "expected stable partition by subject")
	}

	// Subjects should be spread over more than one shard
	shards := make(map[uint32]struct{})
	for i := 0; i < 64; i++ {
		other := metadata.New()
		other.Set(metadata.KeySubject, fmt.Sprintf("customer-%d", i))
		shards[other.Partition(8)] = struct{}{}
	}
	require.Greater(t, len(shards), 1, "expected subjects to be distributed across shards")
}
