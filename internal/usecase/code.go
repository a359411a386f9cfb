package usecase

import "crypto/rand"

const (
	orderCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	orderCodeLength   = 6
)

// GenerateOrderCode returns a short human-enterable code. The alphabet skips
// characters easily confused when read aloud (0/O, 1/I).
func GenerateOrderCode() (string, error) {
	buf := make([]byte, orderCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = orderCodeAlphabet[int(b)%len(orderCodeAlphabet)]
	}
	return string(buf), nil
}
