package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

// Fixed key material shared by every installation.
const (
	DefaultPassphrase = "YourSecretKey123"
	DefaultSalt       = "salt"

	LegacyIterations = 65536
	legacyKeyLen     = 16
)

// LegacyCipher is the deterministic PBKDF2 + AES-ECB scheme.
type LegacyCipher struct {
	passphrase string
	salt       string
	block      func() (cipher.Block, error)
}

func NewLegacyCipher(passphrase, salt string) *LegacyCipher {
	c := &LegacyCipher{passphrase: passphrase, salt: salt}
	c.block = sync.OnceValues(func() (cipher.Block, error) {
		return aes.NewCipher(c.Key())
	})
	return c
}

// Key derives the AES-128 key from the passphrase and salt.
func (c *LegacyCipher) Key() []byte {
	return pbkdf2.Key([]byte(c.passphrase), []byte(c.salt), LegacyIterations, legacyKeyLen, sha1.New)
}

func (c *LegacyCipher) Encrypt(plaintext string) (string, error) {
	block, err := c.block()
	if err != nil {
		return "", err
	}

	data := pkcs7Pad([]byte(plaintext), block.BlockSize())
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += block.BlockSize() {
		block.Encrypt(out[i:], data[i:])
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

func (c *LegacyCipher) Decrypt(encoded string) (string, error) {
	data, err := decodeBase64(encoded)
	if err != nil {
		return "", err
	}

	block, err := c.block()
	if err != nil {
		return "", err
	}

	bs := block.BlockSize()
	if len(data) == 0 || len(data)%bs != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of %d", ErrCipher, len(data), bs)
	}

	out := make([]byte, len(data))
	for i := 0; i < len(data); i += bs {
		block.Decrypt(out[i:], data[i:])
	}

	plain, err := pkcs7Unpad(out, bs)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not UTF-8", ErrCipher)
	}
	return string(plain), nil
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, fmt.Errorf("%w: bad padding", ErrCipher)
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrCipher)
		}
	}
	return b[:len(b)-n], nil
}
