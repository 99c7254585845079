package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given bytes. It is the integrity
// checksum appended to every row page.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
