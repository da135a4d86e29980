// Package cache stores compiled export artifacts keyed by a content hash of
// the document that produced them. Recompiling an unchanged document is
// deterministic, so a hash hit can skip the compiler entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte-oriented artifact store with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// ArtifactKey builds the cache key for a compiled export artifact. Distinct
// output formats of the same document hash to distinct keys.
func ArtifactKey(documentHash, format string) string {
	return hashKey("artifact", documentHash, format)
}

// hashKey builds a namespaced key from the hash of its parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the full hex-encoded SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
