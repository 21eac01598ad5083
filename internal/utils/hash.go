package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters used by DeriveHash. They are part of the stored hash
// format: changing them invalidates every existing password.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
)

// DeriveHash derives the one-way password hash stored for an account.
//
// The password is stretched with argon2id using salt, and the raw key is
// returned base64-encoded. The result is deterministic for a given
// (password, salt) pair.
//
// Example usage:
//
//	hash := utils.DeriveHash("pw", account.Credential.Salt)
func DeriveHash(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.StdEncoding.EncodeToString(key)
}

// VerifyHash reports whether password hashes to expected with salt.
// The comparison runs in constant time.
func VerifyHash(password, salt, expected string) bool {
	derived := DeriveHash(password, salt)
	return subtle.ConstantTimeCompare([]byte(derived), []byte(expected)) == 1
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// It is used for values that are looked up by equality but must not be
// stored in clear, such as password reset tokens.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
