package analyzer

import (
	"github.com/minio/highwayhash"
)

// snippetKey keys the chain cache digest; it only needs to be stable within a process
var snippetKey = []byte("astmarkov-snippet-chain-cache-01")

// Hash returns the HighwayHash-64 digest identifying a snippet in the chain cache
func Hash(snippet []byte) uint64 {
	return highwayhash.Sum64(snippet, snippetKey)
}
