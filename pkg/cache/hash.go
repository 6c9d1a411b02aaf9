package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ChicagoDave/houseplanner/pkg/plan"
)

// KeyVersion is bumped whenever generator output changes for the same plan,
// so stale entries are never served.
const KeyVersion = "v1"

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// ModelKey returns the cache key for the model generated from p. Plans that
// differ only in letter case or surrounding space of style, roof type or
// feature tags share a key.
func ModelKey(p *plan.PlanDescription) string {
	if p == nil {
		return hashKey("model:"+KeyVersion, nil)
	}
	c := *p
	c.ArchitecturalStyle = strings.ToLower(strings.TrimSpace(c.ArchitecturalStyle))
	c.RoofType = strings.ToLower(strings.TrimSpace(c.RoofType))
	features := make([]string, len(c.SpecialFeatures))
	for i, f := range c.SpecialFeatures {
		features[i] = strings.ToLower(strings.TrimSpace(f))
	}
	c.SpecialFeatures = features
	return hashKey("model:"+KeyVersion, c)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
