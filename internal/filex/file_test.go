package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDataDir_CreatesNestedDirectory(t *testing.T) {
	want := filepath.Join(t.TempDir(), "a", "b")

	got, err := EnsureDataDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}
}

func TestEnsureDataDir_Idempotent(t *testing.T) {
	dir := t.TempDir()

	_, err := EnsureDataDir(dir)
	require.NoError(t, err)
	_, err = EnsureDataDir(dir)
	require.NoError(t, err)
}

func TestEnsureDataDir_DefaultUsesUserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	got, err := EnsureDataDir("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, appDirName), got)
}

func TestEnsureDataDir_FailsUnderAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := EnsureDataDir(filepath.Join(file, "sub"))
	require.Error(t, err)
}
