package services

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	keyBytes   = 32
	iterations = 100_000
)

// PasswordCrypto derives salted password hashes with PBKDF2-SHA256. The same
// (password, salt) pair always yields the same hash; salt and hash are stored
// base64-encoded on the customer row.
type PasswordCrypto struct{}

func NewPasswordCrypto() *PasswordCrypto {
	return &PasswordCrypto{}
}

// Encrypt generates a fresh random salt and returns it with the derived hash.
func (p *PasswordCrypto) Encrypt(password string) (salt, hash string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("generate salt: %w", err)
	}
	salt = base64.RawStdEncoding.EncodeToString(raw)
	hash = derive(password, raw)
	return salt, hash, nil
}

// EncryptWithSalt re-derives the hash for an existing salt, for verification
// and for password changes that keep the customer's salt.
func (p *PasswordCrypto) EncryptWithSalt(password, salt string) (string, error) {
	raw, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	return derive(password, raw), nil
}

// Matches compares a derived hash against the stored one in constant time.
func (p *PasswordCrypto) Matches(derived, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(derived), []byte(stored)) == 1
}

func derive(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, iterations, keyBytes, sha256.New)
	return base64.RawStdEncoding.EncodeToString(key)
}
