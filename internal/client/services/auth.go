// Package services contains the application services behind the register
// and login screens: the credential store that owns the device's single
// identity, and the remember-me service that keeps an encrypted copy of the
// last login for form prefill.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/validation"
)

// Keys of the auth namespace.
const (
	keyID             = "id"
	keyUsername       = "username"
	keyPassword       = "password"
	keyPasswordScheme = "password_scheme"
	keyIsLoggedIn     = "isLoggedIn"
)

// RegistrationResult is the outcome of AuthService.Register.
type RegistrationResult int

const (
	RegistrationSuccess RegistrationResult = iota
	RegistrationEmptyUsername
	RegistrationInvalidPassword
	RegistrationUsernameExists
	RegistrationError
)

func (r RegistrationResult) String() string {
	switch r {
	case RegistrationSuccess:
		return "SUCCESS"
	case RegistrationEmptyUsername:
		return "EMPTY_USERNAME"
	case RegistrationInvalidPassword:
		return "INVALID_PASSWORD"
	case RegistrationUsernameExists:
		return "USERNAME_EXISTS"
	default:
		return "ERROR"
	}
}

// Identity is the public view of the stored identity. It never carries the
// password.
type Identity struct {
	ID         string
	Username   string
	IsLoggedIn bool
}

// AuthService is the credential store.
//
// States: no identity, identity logged out, identity logged in. Every
// mutating call has committed its write before it returns; a storage
// failure is reported as an error and never as "invalid credentials".
type AuthService interface {
	// Register stores a new identity and logs it in. Registering the name
	// that is already stored yields RegistrationUsernameExists; any other
	// name replaces the stored identity.
	Register(ctx context.Context, username, password string) (RegistrationResult, error)
	// Login reports whether username and password match the stored identity
	// and marks it logged in if so. A failed attempt leaves the flag as is.
	Login(ctx context.Context, username, password string) (bool, error)
	// Logout clears the logged-in flag and keeps the identity.
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) (bool, error)
	// CurrentUsername returns "" when no identity is stored.
	CurrentUsername(ctx context.Context) (string, error)
	CurrentIdentity(ctx context.Context) (Identity, error)
}

type Option func(*authService)

// WithPasswordStorage selects how new passwords are persisted.
func WithPasswordStorage(ps PasswordStorage) Option {
	return func(a *authService) { a.storage = ps }
}

// WithPermissiveRegistration skips password rules at registration; only an
// empty username or password is rejected.
func WithPermissiveRegistration() Option {
	return func(a *authService) { a.permissive = true }
}

func WithLogger(l logging.Logger) Option {
	return func(a *authService) { a.log = l }
}

type authService struct {
	mu         sync.Mutex
	db         *sql.DB
	storage    PasswordStorage
	permissive bool
	log        logging.Logger
}

// NewAuthService builds the credential store on db. By default passwords
// are kept as bcrypt hashes and registration enforces the password rules.
func NewAuthService(db *sql.DB, opts ...Option) AuthService {
	a := &authService{
		db:      db,
		storage: NewBcryptStorage(0),
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *authService) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db, metadata.NamespaceAuth)
}

func (a *authService) Register(ctx context.Context, username, password string) (RegistrationResult, error) {
	if username == "" {
		return RegistrationEmptyUsername, nil
	}
	if a.permissive {
		if password == "" {
			return RegistrationInvalidPassword, nil
		}
	} else if validation.ValidatePassword(password) != validation.PasswordValid {
		return RegistrationInvalidPassword, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	current, err := a.repo(a.db).Get(ctx, keyUsername)
	if err != nil {
		return RegistrationError, storageError(err)
	}
	if string(current) == username {
		return RegistrationUsernameExists, nil
	}

	encoded, err := a.storage.Encode(password)
	if err != nil {
		return RegistrationError, fmt.Errorf("encode password: %w", err)
	}

	id := uuid.NewString()
	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.repo(tx)
		for _, kv := range []struct{ k, v string }{
			{keyID, id},
			{keyUsername, username},
			{keyPassword, encoded},
			{keyPasswordScheme, a.storage.Scheme()},
			{keyIsLoggedIn, strconv.FormatBool(true)},
		} {
			if err := repo.Set(ctx, kv.k, []byte(kv.v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		a.log.Error(ctx, "registration not persisted", "username", username, "error", err)
		return RegistrationError, storageError(err)
	}

	if len(current) > 0 {
		a.log.Warn(ctx, "identity replaced", "previous", string(current), "username", username)
	}
	a.log.Info(ctx, "identity registered", "username", username, "id", id)
	return RegistrationSuccess, nil
}

func (a *authService) Login(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	record, err := a.repo(a.db).List(ctx)
	if err != nil {
		return false, storageError(err)
	}

	stored, ok := record[keyUsername]
	if !ok || string(stored) != username {
		a.log.Info(ctx, "login rejected", "username", username)
		return false, nil
	}

	ps, err := a.storageFor(string(record[keyPasswordScheme]))
	if err != nil {
		return false, err
	}
	match, err := ps.Matches(string(record[keyPassword]), password)
	if err != nil {
		return false, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		a.log.Info(ctx, "login rejected", "username", username)
		return false, nil
	}

	if err := a.repo(a.db).Set(ctx, keyIsLoggedIn, []byte(strconv.FormatBool(true))); err != nil {
		return false, storageError(err)
	}
	a.log.Info(ctx, "login succeeded", "username", username)
	return true, nil
}

// storageFor picks the scheme a record was written with. Records without
// a scheme predate hashing and are plain.
func (a *authService) storageFor(scheme string) (PasswordStorage, error) {
	switch scheme {
	case "", StoragePlain:
		return PlainStorage{}, nil
	case a.storage.Scheme():
		return a.storage, nil
	case StorageBcrypt:
		return NewBcryptStorage(0), nil
	case StorageSHA512Crypt:
		return SHA512CryptStorage{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown password scheme %q", common.ErrorInternal, scheme)
	}
}

func (a *authService) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.repo(a.db).Set(ctx, keyIsLoggedIn, []byte(strconv.FormatBool(false))); err != nil {
		return storageError(err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) IsLoggedIn(ctx context.Context) (bool, error) {
	id, err := a.CurrentIdentity(ctx)
	return id.IsLoggedIn, err
}

func (a *authService) CurrentUsername(ctx context.Context) (string, error) {
	id, err := a.CurrentIdentity(ctx)
	return id.Username, err
}

func (a *authService) CurrentIdentity(ctx context.Context) (Identity, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	record, err := a.repo(a.db).List(ctx)
	if err != nil {
		return Identity{}, storageError(err)
	}
	loggedIn, _ := strconv.ParseBool(string(record[keyIsLoggedIn]))
	return Identity{
		ID:         string(record[keyID]),
		Username:   string(record[keyUsername]),
		IsLoggedIn: loggedIn,
	}, nil
}

func storageError(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorage, err)
}
