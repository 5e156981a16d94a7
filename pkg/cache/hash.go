package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of a render input, typically the DOT source
// of a link graph. Two graphs with the same DOT share cached artifacts.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey joins prefix and the hash of the JSON encoding of parts, e.g.
// "artifact:3f2a...". Parts must be JSON-encodable; render options are
// plain structs.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
