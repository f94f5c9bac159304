package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
)

// KeyPrefix namespaces render artifacts in shared stores.
const KeyPrefix = "render"

// RenderKeyOpts lists the options that influence rendered output.
type RenderKeyOpts struct {
	Syntax  string   `json:"syntax"`
	Formats []string `json:"formats"`
	Debug   bool     `json:"debug"`
	Scale   float64  `json:"scale"`
	Style   string   `json:"style"`
	Inches  bool     `json:"inches"`
}

// RenderKey returns the cache key for rendering doc with opts. Format order
// does not affect the key.
func RenderKey(doc []byte, opts RenderKeyOpts) string {
	opts.Formats = slices.Sorted(slices.Values(opts.Formats))
	return hashKey(KeyPrefix, Hash(doc), opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
