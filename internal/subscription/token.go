package subscription

import (
	"crypto/rand"
)

const (
	tokenLength   = 25
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateToken produces a random 25-character case-sensitive alphanumeric
// subscription token. The token is a bearer credential: possession proves
// control of the subscribed address, so the random source must be
// cryptographically strong.
//
// Uniqueness is statistical (62^25 values); the database insert is the
// backstop against the astronomically unlikely collision.
func GenerateToken() string {
	// Rejection sampling keeps the distribution uniform over the alphabet:
	// 248 is the largest multiple of 62 below 256, bytes past it are redrawn.
	const limit = byte(248)

	token := make([]byte, 0, tokenLength)
	buf := make([]byte, 32)
	for len(token) < tokenLength {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand failure means the platform entropy source is
			// broken; no sensible recovery exists.
			panic("subscription: crypto/rand unavailable: " + err.Error())
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			token = append(token, tokenAlphabet[int(b)%len(tokenAlphabet)])
			if len(token) == tokenLength {
				break
			}
		}
	}
	return string(token)
}
