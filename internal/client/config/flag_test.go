package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	full := defaults()
	full.DataDir = "/tmp/ck"
	full.Language = "de"
	full.LogLevel = "debug"
	full.UsernamePolicy = "permissive"
	full.PasswordStorage = "plain"
	full.RememberMeScheme = "legacy"

	lang := defaults()
	lang.Language = "de"

	tests := []struct {
		expected    Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-d", "/tmp/ck", "-l", "de", "-v", "debug", "-u", "permissive", "-p", "plain", "-r", "legacy"},
			expected: full},
		{name: "foreign flags ignored", args: []string{"cmd", "-c", "cfg.json", "-x", "1", "-l=de"}, expected: lang},
		{name: "no flags keeps defaults", args: []string{"cmd"}, expected: defaults()},
		{name: "missing value", args: []string{"cmd", "-d"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := defaults()

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(&config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(&config) })
			}
		})
	}
}
