// Package cache provides a small artifact cache for rendered cards.
//
// Rendering is deterministic over its inputs, so a card can be keyed by a
// hash of the quote data, configuration, and format and reused on repeat
// invocations. Two implementations exist: a file-backed cache for the CLI
// and a null cache that disables caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Inputs are
// hashed into the key, so a stale hit is impossible; the TTL only bounds
// disk growth.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get returns the cached data for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Hash returns a hex-encoded SHA-256 digest of data, used to build keys.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
