// Package cryptox seals small local records at rest with XChaCha20-Poly1305.
//
// The client keeps a random device key in the data directory and uses it to
// seal the persisted session record, so copying the database alone does not
// leak the bearer token.
package cryptox

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/zenora/internal/common"
	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the length of a device key in bytes.
const KeySize = chacha20poly1305.KeySize

var (
	ErrInvalidKey = errors.New("invalid key")
	ErrMalformed  = errors.New("malformed sealed data")
)

// LoadOrCreateKey reads the device key at path, creating a new random key
// with 0600 permissions if the file does not exist.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != KeySize {
			return nil, fmt.Errorf("read key %s: %w", path, ErrInvalidKey)
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read key %s: %w", path, err)
	}

	key = common.GenerateRandByteArray(KeySize)
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write key %s: %w", path, err)
	}
	return key, nil
}

// SealJSON serializes v to JSON and encrypts it under key. The returned
// blob is nonce || ciphertext.
func SealJSON(v any, key []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, ErrInvalidKey
	}

	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// OpenJSON reverses SealJSON, decoding the plaintext into v. Tampered,
// truncated or foreign-key blobs yield ErrMalformed.
func OpenJSON(sealed, key []byte, v any) error {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return ErrInvalidKey
	}
	if len(sealed) < aead.NonceSize()+aead.Overhead() {
		return ErrMalformed
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return ErrMalformed
	}
	if err := json.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
