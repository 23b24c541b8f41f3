package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 100000
	keyLength  = 32
)

// Hasher derives storable password hashes in "salt:digest" form, with a
// fresh random salt per call. PBKDF2-SHA256 at a fixed iteration count keeps
// the derivation deliberately slow.
type Hasher struct{}

func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns "salt:digest" where salt is hex-encoded random bytes and
// digest is the hex PBKDF2-SHA256 of the password under that salt.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	saltHex := hex.EncodeToString(salt)
	digest := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, keyLength, sha256.New)

	return saltHex + ":" + hex.EncodeToString(digest), nil
}

// Verify re-derives the digest with the stored salt and compares it to the
// stored digest in constant time. A malformed stored hash fails closed.
func (h *Hasher) Verify(password, storedHash string) bool {
	salt, stored, ok := strings.Cut(storedHash, ":")
	if !ok || salt == "" || stored == "" {
		return false
	}

	digest := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)

	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(digest)), []byte(stored)) == 1
}
