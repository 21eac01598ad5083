package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// SecretLength is the length of generated salts and bearer tokens.
const SecretLength = 64

// RandomString returns n characters drawn uniformly from [A-Za-z0-9]
// using crypto/rand.
func RandomString(n int) (string, error) {
	limit := big.NewInt(int64(len(alphanumeric)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = alphanumeric[idx.Int64()]
	}

	return string(buf), nil
}

// RandomHex returns size random bytes hex-encoded.
func RandomHex(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
