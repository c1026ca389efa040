// Package cryptox implements the "remember me" password cipher.
//
// Two schemes exist. The legacy scheme reproduces the format written by
// earlier releases: a fixed passphrase stretched with PBKDF2-HMAC-SHA1 into
// an AES-128 key, applied block by block (ECB) with PKCS#7 padding. It has no
// nonce, so equal passwords produce equal ciphertexts, and the key is the
// same on every device. It must be treated as obfuscation, not protection.
// There is no integrity check either: a value written under another key
// almost always fails the padding or UTF-8 checks, but nothing guarantees
// it, and a rare one decrypts to garbage without an error.
//
// The sealed scheme derives an AES-256 key with argon2id and encrypts with
// AES-GCM under a fresh random nonce per record. Sealed values carry the
// "v2:" prefix so both formats can be read back.
package cryptox

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDecoding is returned when a stored value is not valid base64.
	ErrDecoding = errors.New("remembered password is not valid base64")
	// ErrCipher is returned when a stored value was not produced by this
	// scheme (bad length, padding, or authentication tag).
	ErrCipher = errors.New("remembered password cannot be decrypted")
)

const (
	SchemeLegacy = "legacy"
	SchemeSealed = "sealed"
)

// Cipher encrypts a password into a printable string and back.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}

// RememberMeCipher writes with one scheme and reads both.
type RememberMeCipher struct {
	scheme string
	legacy *LegacyCipher
	sealed *SealedCipher
}

// NewRememberMeCipher builds a cipher that encrypts with the named scheme.
// An empty name selects the sealed scheme.
func NewRememberMeCipher(scheme string) (*RememberMeCipher, error) {
	switch scheme {
	case "":
		scheme = SchemeSealed
	case SchemeLegacy, SchemeSealed:
	default:
		return nil, fmt.Errorf("unknown remember-me scheme %q", scheme)
	}
	return &RememberMeCipher{
		scheme: scheme,
		legacy: NewLegacyCipher(DefaultPassphrase, DefaultSalt),
		sealed: NewSealedCipher(DefaultPassphrase, DefaultSalt),
	}, nil
}

func (c *RememberMeCipher) Scheme() string {
	return c.scheme
}

func (c *RememberMeCipher) Encrypt(plaintext string) (string, error) {
	if c.scheme == SchemeLegacy {
		return c.legacy.Encrypt(plaintext)
	}
	return c.sealed.Encrypt(plaintext)
}

func (c *RememberMeCipher) Decrypt(encoded string) (string, error) {
	if strings.HasPrefix(encoded, sealedPrefix) {
		return c.sealed.Decrypt(encoded)
	}
	return c.legacy.Decrypt(encoded)
}

// decodeBase64 accepts standard base64 with optional line breaks, the form
// older clients wrapped at 76 columns.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return b, nil
}
