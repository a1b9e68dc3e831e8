package share

import (
	"fmt"

	"github.com/2beens/gymsplit/pkg"
)

const (
	SlugLength   = 26
	slugAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	// largest multiple of len(slugAlphabet) that fits in a byte; bytes above are
	// rejected so every character is equally likely
	slugByteLimit = 252
	maxSlugLength = 64
)

// NewSlug returns a random base-36 slug of SlugLength characters (~134 bits).
func NewSlug() (string, error) {
	slug := make([]byte, 0, SlugLength)
	for len(slug) < SlugLength {
		randomBytes, err := pkg.GenerateRandomBytes(SlugLength)
		if err != nil {
			return "", fmt.Errorf("generate slug: %w", err)
		}
		for _, b := range randomBytes {
			if b >= slugByteLimit {
				continue
			}
			slug = append(slug, slugAlphabet[int(b)%len(slugAlphabet)])
			if len(slug) == SlugLength {
				break
			}
		}
	}
	return string(slug), nil
}

// plausibleSlug filters out input no stored slug can match before hitting any store.
func plausibleSlug(slug string) bool {
	if slug == "" || len(slug) > maxSlugLength {
		return false
	}
	for i := 0; i < len(slug); i++ {
		c := slug[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
