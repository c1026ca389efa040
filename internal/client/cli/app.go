package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/client/client"
	"github.com/dmitrijs2005/credkeeper/internal/client/config"
	"github.com/dmitrijs2005/credkeeper/internal/client/services"
	"github.com/dmitrijs2005/credkeeper/internal/cryptox"
	"github.com/dmitrijs2005/credkeeper/internal/filex"
	"github.com/dmitrijs2005/credkeeper/internal/i18n"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/validation"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	authService services.AuthService
	rememberMe  services.RememberMeService
	validator   *validation.Validator
	messages    *i18n.Catalog
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	userName   string
	loggedIn   bool
	remembered services.Remembered
}

// NewApp validates c, opens the local database and wires the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewText(os.Stderr, c.LogLevel)

	dir, err := filex.EnsureDataDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath(dir))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	app, err := newApp(c, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(c *config.Config, db *sql.DB, logger logging.Logger) (*App, error) {
	storage, err := services.NewPasswordStorage(c.PasswordStorage, c.BcryptCost)
	if err != nil {
		return nil, err
	}
	policy, err := validation.PolicyByName(c.UsernamePolicy)
	if err != nil {
		return nil, err
	}
	cipher, err := cryptox.NewRememberMeCipher(c.RememberMeScheme)
	if err != nil {
		return nil, err
	}
	messages, err := i18n.New(c.Language)
	if err != nil {
		return nil, err
	}

	opts := []services.Option{
		services.WithPasswordStorage(storage),
		services.WithLogger(logger.With("component", "auth")),
	}
	if c.PermissiveRegistration {
		opts = append(opts, services.WithPermissiveRegistration())
	}

	return &App{
		config:      c,
		db:          db,
		authService: services.NewAuthService(db, opts...),
		rememberMe:  services.NewRememberMeService(db, cipher, logger.With("component", "remember_me")),
		validator:   validation.New(policy),
		messages:    messages,
		log:         logger,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores the session, runs the REPL until the user exits and closes
// the database.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()
	return a.Root(ctx)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
