package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a random identifier like "chan-1a2b3c4d". Channel and
// message handles only need to be unique within one session.
func NewID(prefix string) string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return prefix + "-" + hex.EncodeToString(b)
}
