package config

import (
	"fmt"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/credkeeper/internal/client/services"
	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/cryptox"
	"github.com/dmitrijs2005/credkeeper/internal/validation"
)

// Config holds runtime settings for the credkeeper CLI.
type Config struct {
	// DataDir holds the database. Empty means the per-user default.
	DataDir string
	// DatabaseFile is relative to DataDir unless absolute.
	DatabaseFile string
	Language     string
	LogLevel     string

	UsernamePolicy string
	// PermissiveRegistration accepts any non-empty password at registration.
	PermissiveRegistration bool

	PasswordStorage  string
	BcryptCost       int
	RememberMeScheme string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ""
	c.DatabaseFile = "credkeeper.db"
	c.Language = "en"
	c.LogLevel = "warn"
	c.UsernamePolicy = validation.PolicyStrict
	c.PasswordStorage = services.StorageBcrypt
	c.BcryptCost = bcrypt.DefaultCost
	c.RememberMeScheme = cryptox.SchemeSealed
}

// Validate rejects unknown policy and scheme names.
func (c *Config) Validate() error {
	if _, err := validation.PolicyByName(c.UsernamePolicy); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	switch c.PasswordStorage {
	case services.StoragePlain, services.StorageBcrypt, services.StorageSHA512Crypt:
	default:
		return fmt.Errorf("%w: unknown password storage %q", common.ErrInvalidConfig, c.PasswordStorage)
	}
	switch c.RememberMeScheme {
	case cryptox.SchemeLegacy, cryptox.SchemeSealed:
	default:
		return fmt.Errorf("%w: unknown remember-me scheme %q", common.ErrInvalidConfig, c.RememberMeScheme)
	}
	if c.DatabaseFile == "" {
		return fmt.Errorf("%w: empty database file", common.ErrInvalidConfig)
	}
	return nil
}

// DatabasePath resolves DatabaseFile against dataDir.
func (c *Config) DatabasePath(dataDir string) string {
	if filepath.IsAbs(c.DatabaseFile) {
		return c.DatabaseFile
	}
	return filepath.Join(dataDir, c.DatabaseFile)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
