package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/credkeeper/internal/client/services"
	"github.com/dmitrijs2005/credkeeper/internal/strength"
)

const goodPassword = "Abcdef1!"

// stubInputs answers every text prompt with text (or the prompt's default
// when text is empty) and password prompts with passwords in order.
func stubInputs(t *testing.T, text string, passwords ...string) {
	t.Helper()
	origST, origTD, origGP := getSimpleText, getTextWithDefault, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getTextWithDefault = origTD
		getPassword = origGP
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getTextWithDefault = func(_ *bufio.Reader, _, def string, _ io.Writer) (string, error) {
		if text == "" {
			return def, nil
		}
		return text, nil
	}
	i := 0
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if i >= len(passwords) {
			return nil, io.EOF
		}
		pw := []byte(passwords[i])
		i++
		return pw, nil
	}
}

func register(t *testing.T, app testApp, user, password string) {
	t.Helper()
	stubInputs(t, user, password, password)
	require.NoError(t, app.Register(context.Background()))
	require.True(t, app.loggedIn)
}

func TestRegister_Success(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "alice", goodPassword)

	assert.Contains(t, app.buf.String(), "Strength: Strong (77/100)")
	assert.Contains(t, app.buf.String(), "Registration successful.")
	assert.Equal(t, "alice", app.userName)

	id, err := app.authService.CurrentIdentity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Username)
	assert.True(t, id.IsLoggedIn)
}

func TestRegister_FormFailures(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		passwords []string
		want      string
	}{
		{name: "empty username", user: "", want: "Username is required."},
		{name: "bad username", user: "a b", want: "Username must be 3-40 characters"},
		{name: "short password", user: "alice", passwords: []string{"Ab1!"}, want: "Password must be at least 6 characters long."},
		{name: "no digit", user: "alice", passwords: []string{"Abcdef!"}, want: "Password must contain a digit."},
		{name: "mismatch", user: "alice", passwords: []string{goodPassword, "Abcdef1?"}, want: "Passwords do not match."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			stubInputs(t, tt.user, tt.passwords...)

			require.NoError(t, app.Register(context.Background()))
			assert.Contains(t, app.buf.String(), tt.want)
			assert.False(t, app.loggedIn)

			name, err := app.authService.CurrentUsername(context.Background())
			require.NoError(t, err)
			assert.Empty(t, name)
		})
	}
}

func TestRegister_PermissiveRegistration(t *testing.T) {
	cfg := testConfig()
	cfg.PermissiveRegistration = true
	app := newTestAppAt(t, filepath.Join(t.TempDir(), "p.db"), cfg)

	register(t, app, "alice", "abc")
	assert.Contains(t, app.buf.String(), "Strength: Weak")
	assert.Contains(t, app.buf.String(), "Registration successful.")
}

func TestRegister_ExistingUsername(t *testing.T) {
	app := newTestApp(t)
	register(t, app, "alice", goodPassword)
	app.buf.Reset()

	stubInputs(t, "alice", "Other1!x", "Other1!x")
	require.NoError(t, app.Register(context.Background()))
	assert.Contains(t, app.buf.String(), "This username is already registered.")
}

func TestLogin_Flow(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	register(t, app, "alice", goodPassword)
	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.loggedIn)

	t.Run("wrong password", func(t *testing.T) {
		app.buf.Reset()
		stubInputs(t, "alice", "Wrong1!x")
		require.NoError(t, app.Login(ctx, false))
		assert.Contains(t, app.buf.String(), "Invalid username or password.")
		assert.False(t, app.loggedIn)
	})

	t.Run("empty password", func(t *testing.T) {
		app.buf.Reset()
		stubInputs(t, "alice", "")
		require.NoError(t, app.Login(ctx, false))
		assert.Contains(t, app.buf.String(), "Invalid username or password.")
	})

	t.Run("success with remember", func(t *testing.T) {
		app.buf.Reset()
		stubInputs(t, "alice", goodPassword)
		require.NoError(t, app.Login(ctx, true))
		assert.Contains(t, app.buf.String(), "Login successful.")
		assert.True(t, app.loggedIn)

		r, ok, err := app.rememberMe.Load(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "alice", r.Username)
		assert.Equal(t, goodPassword, r.Password)
	})

	t.Run("already logged in", func(t *testing.T) {
		app.buf.Reset()
		require.NoError(t, app.Login(ctx, false))
		assert.Contains(t, app.buf.String(), "Already logged in as alice.")
	})

	t.Run("success without remember clears record", func(t *testing.T) {
		require.NoError(t, app.Logout(ctx))
		stubInputs(t, "alice", goodPassword)
		require.NoError(t, app.Login(ctx, false))

		_, ok, err := app.rememberMe.Load(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLogin_UsesRememberedPassword(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	register(t, app, "alice", goodPassword)
	require.NoError(t, app.Logout(ctx))

	app.remembered.Username = "alice"
	app.remembered.Password = goodPassword

	stubInputs(t, "", "")
	require.NoError(t, app.Login(ctx, true))
	assert.True(t, app.loggedIn)
}

type failingRememberMe struct {
	services.RememberMeService
}

func (failingRememberMe) Apply(context.Context, bool, string, string) error {
	return errors.New("disk full")
}

func TestLogin_RememberMeFailure(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	register(t, app, "alice", goodPassword)
	require.NoError(t, app.Logout(ctx))

	app.rememberMe = failingRememberMe{RememberMeService: app.rememberMe}
	app.remembered = services.Remembered{Username: "bob", Password: "Bobpass1!"}
	app.buf.Reset()

	stubInputs(t, "alice", goodPassword)
	require.NoError(t, app.Login(ctx, true))

	out := app.buf.String()
	assert.Contains(t, out, "Login successful.")
	assert.Contains(t, out, "remembered credentials could not be updated")
	assert.True(t, app.loggedIn)
	assert.Equal(t, services.Remembered{Username: "bob", Password: "Bobpass1!"}, app.remembered)
}

func TestWhoAmI(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.WhoAmI(ctx))
	assert.Contains(t, app.buf.String(), "No identity registered.")

	register(t, app, "alice", goodPassword)
	app.buf.Reset()
	require.NoError(t, app.WhoAmI(ctx))
	assert.Contains(t, app.buf.String(), "alice (")
	assert.Contains(t, app.buf.String(), "logged in")
}

func TestStrength(t *testing.T) {
	app := newTestApp(t)
	stubInputs(t, "", "")
	require.NoError(t, app.Strength(context.Background()))
	assert.Contains(t, app.buf.String(), "Strength: Empty (0/100)")
}

func TestPaint_KeepsText(t *testing.T) {
	for _, tier := range []strength.Tier{strength.TierNeutral, strength.TierDanger, strength.TierWarning, strength.TierSuccess} {
		assert.Contains(t, paint("Medium", tier), "Medium")
	}
}
