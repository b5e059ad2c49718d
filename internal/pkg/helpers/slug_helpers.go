package helpers

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gosimple/slug"
)

// GenerateSlug builds a URL slug from a name with a short random suffix
// so equal names never collide.
func GenerateSlug(name string) string {
	suffix := make([]byte, 3)
	// rand.Read on crypto/rand never fails on supported platforms
	_, _ = rand.Read(suffix)
	return slug.Make(name) + "-" + hex.EncodeToString(suffix)
}

// GenerateHexToken returns n random bytes hex-encoded, used for password
// reset tokens.
func GenerateHexToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
