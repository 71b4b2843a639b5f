package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Hasher derives and verifies salted bcrypt password hashes.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{
		cost: bcrypt.DefaultCost,
	}
}

// GenerateSalt returns a new random per-user salt.
func (h *Hasher) GenerateSalt() (string, error) {
	salt, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return salt.String(), nil
}

// Hash derives a one-way hash from the salt and the plaintext password.
func (h *Hasher) Hash(password, salt string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(digest(password, salt), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hashed), nil
}

// Verify recomputes the hash and compares. A mismatch is not an error,
// it simply reports false.
func (h *Hasher) Verify(password, salt, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), digest(password, salt)) == nil
}

// digest folds the salted password to a fixed 64 bytes. bcrypt only reads
// the first 72 bytes of its input, so hashing the raw concatenation would
// reject or silently truncate long passwords.
func digest(password, salt string) []byte {
	sum := sha256.Sum256([]byte(salt + password))
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}
