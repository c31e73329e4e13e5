package metadata

import "github.com/spaolacci/murmur3"

// Partition assigns the metadata to one of n shards so that all events about the same
// subject are handled together. The subject is hashed if set, otherwise the ce-id is
// hashed. Metadata with neither attribute, or a partition count of zero, is assigned
// to shard 0.
func (m *Metadata) Partition(n uint32) uint32 {
	if n == 0 {
		return 0
	}

	key, ok := m.Subject()
	if !ok {
		if key, ok = m.ID(); !ok {
			return 0
		}
	}
	return murmur3.Sum32([]byte(key)) % n
}
