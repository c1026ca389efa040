package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

const (
	StoragePlain  = "plain"
	StorageBcrypt = "bcrypt"
	// StorageSHA512Crypt is the glibc "$6$" format, for records that must be
	// checkable by system crypt(3) tooling.
	StorageSHA512Crypt = "sha512crypt"
)

// PasswordStorage turns a password into the value persisted for the
// identity and checks a login attempt against it.
type PasswordStorage interface {
	Scheme() string
	Encode(password string) (string, error)
	Matches(stored, password string) (bool, error)
}

// PlainStorage keeps the password verbatim. Records written by older
// releases use this scheme.
type PlainStorage struct{}

func (PlainStorage) Scheme() string { return StoragePlain }

func (PlainStorage) Encode(password string) (string, error) { return password, nil }

func (PlainStorage) Matches(stored, password string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, nil
}

// BcryptStorage keeps a bcrypt hash of the password. bcrypt reads at most
// 72 bytes, so the password is first reduced to base64(SHA-256), 44 bytes,
// and passwords of any length hash without error or truncation.
type BcryptStorage struct {
	Cost int
}

// NewBcryptStorage clamps cost into bcrypt's accepted range; zero selects
// bcrypt.DefaultCost.
func NewBcryptStorage(cost int) BcryptStorage {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	cost = max(cost, bcrypt.MinCost)
	cost = min(cost, bcrypt.MaxCost)
	return BcryptStorage{Cost: cost}
}

func (BcryptStorage) Scheme() string { return StorageBcrypt }

func (s BcryptStorage) Encode(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(bcryptInput(password), s.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptStorage) Matches(stored, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), bcryptInput(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

func bcryptInput(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// SHA512CryptStorage keeps a salted "$6$" crypt(3) hash.
type SHA512CryptStorage struct{}

func (SHA512CryptStorage) Scheme() string { return StorageSHA512Crypt }

func (SHA512CryptStorage) Encode(password string) (string, error) {
	salt, err := common.MakeRandHexString(8)
	if err != nil {
		return "", err
	}
	return sha512_crypt.New().Generate([]byte(password), []byte("$6$"+salt))
}

func (SHA512CryptStorage) Matches(stored, password string) (bool, error) {
	err := sha512_crypt.New().Verify(stored, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, crypt.ErrKeyMismatch):
		return false, nil
	default:
		return false, err
	}
}

// NewPasswordStorage resolves a configured scheme name. An empty name
// selects bcrypt with the given cost.
func NewPasswordStorage(scheme string, bcryptCost int) (PasswordStorage, error) {
	switch scheme {
	case "", StorageBcrypt:
		return NewBcryptStorage(bcryptCost), nil
	case StoragePlain:
		return PlainStorage{}, nil
	case StorageSHA512Crypt:
		return SHA512CryptStorage{}, nil
	default:
		return nil, fmt.Errorf("unknown password storage %q", scheme)
	}
}
