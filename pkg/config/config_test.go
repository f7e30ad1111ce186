package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	err := os.WriteFile(path, []byte(`current-profile: chat
profiles:
  - name: chat
    scheme: eaes
    separator: ", "
  - name: plain
    scheme: aes
    separator: "\n"
`), 0644)
	require.NoError(t, err)

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "chat", cfg.CurrentProfile)
	require.Len(t, cfg.Profiles, 2)

	p := cfg.Profiles[0]
	require.Equal(t, "chat", p.Name)
	require.Equal(t, SchemeEAES, p.Scheme)
	require.Equal(t, ", ", p.Separator)
	require.True(t, p.Escaped())

	p = cfg.Profiles[1]
	require.Equal(t, SchemeAES, p.Scheme)
	require.Equal(t, "\n", p.Separator)
	require.False(t, p.Escaped())
}

func TestReadConfig_Missing(t *testing.T) {
	// The default path not existing yields an empty config, but an
	// explicitly passed path must exist.
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent")
	_, err := ReadConfig(path)
	require.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")

	cfg := Config{
		CurrentProfile: "chat",
		Profiles: []*Profile{
			{Name: "chat", Scheme: SchemeEAES, Separator: ", "},
		},
		configPath: path,
	}
	require.NoError(t, cfg.Write())

	got, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "chat", got.CurrentProfile)
	require.Len(t, got.Profiles, 1)
	require.Equal(t, ", ", got.Profiles[0].Separator)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestHasProfile(t *testing.T) {
	cfg := Config{
		Profiles: []*Profile{
			{Name: "a"},
			{Name: "b"},
		},
	}
	require.True(t, cfg.HasProfile("a"))
	require.True(t, cfg.HasProfile("b"))
	require.False(t, cfg.HasProfile("c"))
}

func TestActiveProfile(t *testing.T) {
	cfg := Config{
		CurrentProfile: "plain",
		Profiles: []*Profile{
			{Name: "chat", Scheme: SchemeEAES},
			{Name: "plain", Scheme: SchemeAES},
		},
	}

	p := cfg.ActiveProfile()
	require.NotNil(t, p)
	require.Equal(t, "plain", p.Name)

	// ProfileOverride takes precedence.
	cfg.ProfileOverride = "chat"
	p = cfg.ActiveProfile()
	require.NotNil(t, p)
	require.Equal(t, "chat", p.Name)

	// The returned profile is a copy; mutations must not leak back.
	p.Separator = "##"
	require.Empty(t, cfg.Profiles[0].Separator)
}

func TestActiveProfile_NotFound(t *testing.T) {
	cfg := Config{
		CurrentProfile: "missing",
		Profiles:       []*Profile{{Name: "other"}},
	}
	require.Nil(t, cfg.ActiveProfile())
}

func TestSetCurrentProfile(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Profiles: []*Profile{
			{Name: "chat"},
			{Name: "plain"},
		},
		configPath: filepath.Join(dir, "config"),
	}

	require.NoError(t, cfg.SetCurrentProfile("plain"))
	require.Equal(t, "plain", cfg.CurrentProfile)

	require.Error(t, cfg.SetCurrentProfile("missing"))
	require.Equal(t, "plain", cfg.CurrentProfile)
}
