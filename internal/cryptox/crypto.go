// Package cryptox implements the field-level cipher used to protect journal
// content at rest, plus the keyed digest used for password-reset tokens.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
)

const nonceSize = 12

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// Cipher is a reversible keyed transform for sensitive stored fields.
//
// Encryption is deterministic: the AES-GCM nonce is derived from the
// plaintext with HMAC-SHA256, so the same plaintext and key always produce
// the same ciphertext. Stored values can therefore be matched by equality
// without per-entry nonces.
type Cipher struct {
	key []byte
}

// NewCipher derives a 256-bit AES key from the configured secret.
func NewCipher(secret string) *Cipher {
	key := sha256.Sum256([]byte(secret))
	return &Cipher{key: key[:]}
}

func (c *Cipher) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// syntheticNonce derives the GCM nonce from the plaintext. Equal plaintexts
// yield equal nonces under the same key.
func (c *Cipher) syntheticNonce(plaintext []byte) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write(plaintext)
	return mac.Sum(nil)[:nonceSize]
}

// Encrypt seals plaintext and returns base64(nonce || ciphertext).
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	aead, err := c.aead()
	if err != nil {
		return "", err
	}
	nonce := c.syntheticNonce([]byte(plaintext))
	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, sealed...)), nil
}

// Decrypt reverses Encrypt. Data that was not produced by this cipher and
// key fails with an error instead of decoding to garbage: GCM authentication
// rejects any ciphertext whose tag does not verify.
func (c *Cipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}
	if len(raw) < nonceSize {
		return "", ErrCiphertextTooShort
	}
	aead, err := c.aead()
	if err != nil {
		return "", err
	}
	plaintext, err := aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("opening ciphertext: %w", err)
	}
	return string(plaintext), nil
}

// DigestToken returns a hex HMAC-SHA256 of token under the cipher key.
// The same transform is applied on storage and on lookup, so a presented
// reset token can be matched against its stored digest by equality.
func (c *Cipher) DigestToken(token string) string {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
