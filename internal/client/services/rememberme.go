package services

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/credkeeper/internal/cryptox"
	"github.com/dmitrijs2005/credkeeper/internal/dbx"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
)

// Keys of the remember-me namespace.
const (
	keyRememberMe    = "rememberMe"
	keySavedUsername = "savedUsername"
	keySavedPassword = "savedPassword"
)

// Remembered is a decrypted remember-me pair.
type Remembered struct {
	Username string
	Password string
}

// RememberMeService keeps the optional encrypted copy of the last
// successful login. The saved pair exists only while the rememberMe flag
// is set; opting out removes the whole record.
type RememberMeService interface {
	// Apply records the outcome of a successful login: it saves the pair
	// when remember is true and clears the record otherwise.
	Apply(ctx context.Context, remember bool, username, password string) error
	Save(ctx context.Context, username, password string) error
	Clear(ctx context.Context) error
	// Load decrypts the saved pair. ok is false when nothing is saved.
	// Cipher failures are returned to the caller.
	Load(ctx context.Context) (r Remembered, ok bool, err error)
	// Prefill is Load for form prefill: a record that cannot be decrypted
	// is cleared and reported as absent. Storage errors are still returned.
	Prefill(ctx context.Context) (r Remembered, ok bool, err error)
}

type rememberMe struct {
	mu     sync.Mutex
	db     *sql.DB
	cipher cryptox.Cipher
	log    logging.Logger
}

func NewRememberMeService(db *sql.DB, c cryptox.Cipher, l logging.Logger) RememberMeService {
	if l == nil {
		l = logging.Discard()
	}
	return &rememberMe{db: db, cipher: c, log: l}
}

func (s *rememberMe) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db, metadata.NamespaceRememberMe)
}

func (s *rememberMe) Apply(ctx context.Context, remember bool, username, password string) error {
	if remember {
		return s.Save(ctx, username, password)
	}
	return s.Clear(ctx)
}

func (s *rememberMe) Save(ctx context.Context, username, password string) error {
	enc, err := s.cipher.Encrypt(password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyRememberMe, []byte(strconv.FormatBool(true))); err != nil {
			return err
		}
		if err := repo.Set(ctx, keySavedUsername, []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, keySavedPassword, []byte(enc))
	})
	if err != nil {
		return storageError(err)
	}
	s.log.Info(ctx, "credentials remembered", "username", username)
	return nil
}

func (s *rememberMe) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked(ctx)
}

func (s *rememberMe) clearLocked(ctx context.Context) error {
	if err := s.repo(s.db).Clear(ctx); err != nil {
		return storageError(err)
	}
	return nil
}

func (s *rememberMe) Load(ctx context.Context) (Remembered, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *rememberMe) loadLocked(ctx context.Context) (Remembered, bool, error) {
	record, err := s.repo(s.db).List(ctx)
	if err != nil {
		return Remembered{}, false, storageError(err)
	}

	on, _ := strconv.ParseBool(string(record[keyRememberMe]))
	username, hasUser := record[keySavedUsername]
	enc, hasPass := record[keySavedPassword]
	if !on || !hasUser || !hasPass {
		return Remembered{}, false, nil
	}

	password, err := s.cipher.Decrypt(string(enc))
	if err != nil {
		return Remembered{}, false, err
	}
	return Remembered{Username: string(username), Password: password}, true, nil
}

func (s *rememberMe) Prefill(ctx context.Context) (Remembered, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok, err := s.loadLocked(ctx)
	if err == nil {
		return r, ok, nil
	}
	if !errors.Is(err, cryptox.ErrCipher) && !errors.Is(err, cryptox.ErrDecoding) {
		return Remembered{}, false, err
	}

	s.log.Warn(ctx, "discarding unreadable remembered credentials", "error", err)
	if err := s.clearLocked(ctx); err != nil {
		return Remembered{}, false, err
	}
	return Remembered{}, false, nil
}
