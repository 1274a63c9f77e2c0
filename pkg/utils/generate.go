package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// ==================== CLIENT ID ====================

func GenerateClientID() uuid.UUID {
	return uuid.New()
}

func ParseClientID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// ==================== FINGERPRINT ====================

// Fingerprint returns a short BLAKE2b-256 digest of payload, suitable for an ETag.
func Fingerprint(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:16])
}
