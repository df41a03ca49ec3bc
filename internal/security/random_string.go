package security

import (
	"crypto/rand"
	"errors"
	"fmt"
)

const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var (
	errNegativeLength = errors.New("length must be non-negative")
	errBadAlphabet    = errors.New("alphabet must hold between 1 and 256 characters")
)

// RandomString draws length characters from alphabet using crypto/rand.
// Bytes that would bias the distribution are rejected and redrawn.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", errBadAlphabet
	}
	if length == 0 {
		return "", nil
	}

	size := len(alphabet)
	ceiling := 256 - 256%size
	result := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(result) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, value := range buffer {
			if int(value) >= ceiling {
				continue
			}
			result = append(result, alphabet[int(value)%size])
			if len(result) == length {
				break
			}
		}
	}
	return string(result), nil
}

// Secret returns a URL-safe random value suitable for SECRET_KEY.
func Secret(length int) (string, error) {
	return RandomString(length, secretAlphabet)
}
