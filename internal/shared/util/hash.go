package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey maps an identity to a stable hex token usable in storage keys
// and object paths without exposing the identity itself.
func HashUserKey(identity string) string {
	sum := sha256.Sum256([]byte(identity))
	return hex.EncodeToString(sum[:])
}
