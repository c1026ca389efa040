package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

const sealedPrefix = "v2:"

// DeriveMasterKey stretches password and salt into a 32-byte key with argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// SealedCipher is AES-256-GCM with a random nonce per value.
type SealedCipher struct {
	aead func() (cipher.AEAD, error)
}

func NewSealedCipher(passphrase, salt string) *SealedCipher {
	return &SealedCipher{
		aead: sync.OnceValues(func() (cipher.AEAD, error) {
			block, err := aes.NewCipher(DeriveMasterKey([]byte(passphrase), []byte(salt)))
			if err != nil {
				return nil, err
			}
			return cipher.NewGCM(block)
		}),
	}
}

func (c *SealedCipher) Encrypt(plaintext string) (string, error) {
	aead, err := c.aead()
	if err != nil {
		return "", err
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *SealedCipher) Decrypt(encoded string) (string, error) {
	if !strings.HasPrefix(encoded, sealedPrefix) {
		return "", fmt.Errorf("%w: missing %q prefix", ErrCipher, sealedPrefix)
	}
	data, err := decodeBase64(strings.TrimPrefix(encoded, sealedPrefix))
	if err != nil {
		return "", err
	}

	aead, err := c.aead()
	if err != nil {
		return "", err
	}

	ns := aead.NonceSize()
	if len(data) < ns+aead.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrCipher)
	}

	plain, err := aead.Open(nil, data[:ns], data[ns:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCipher, err)
	}
	return string(plain), nil
}
