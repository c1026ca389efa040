package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/credkeeper/internal/common"
)

func defaults() Config {
	var c Config
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "", c.DataDir)
	assert.Equal(t, "credkeeper.db", c.DatabaseFile)
	assert.Equal(t, "en", c.Language)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "strict", c.UsernamePolicy)
	assert.Equal(t, "bcrypt", c.PasswordStorage)
	assert.Equal(t, 10, c.BcryptCost)
	assert.Equal(t, "sealed", c.RememberMeScheme)
	require.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv("CREDKEEPER_CONFIG", "")

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, defaults(), *cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown username policy", func(c *Config) { c.UsernamePolicy = "loose" }},
		{"unknown password storage", func(c *Config) { c.PasswordStorage = "md5" }},
		{"unknown remember-me scheme", func(c *Config) { c.RememberMeScheme = "rot13" }},
		{"empty database file", func(c *Config) { c.DatabaseFile = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), common.ErrInvalidConfig)
		})
	}
}

func TestValidate_LegacyChoices(t *testing.T) {
	c := defaults()
	c.UsernamePolicy = "permissive"
	c.PasswordStorage = "plain"
	c.RememberMeScheme = "legacy"
	require.NoError(t, c.Validate())

	c.PasswordStorage = "sha512crypt"
	require.NoError(t, c.Validate())
}

func TestDatabasePath(t *testing.T) {
	c := defaults()
	assert.Equal(t, filepath.Join("/data", "credkeeper.db"), c.DatabasePath("/data"))

	abs := filepath.Join(t.TempDir(), "other.db")
	c.DatabaseFile = abs
	assert.Equal(t, abs, c.DatabasePath("/data"))
}
