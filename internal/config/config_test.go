package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Practice.Words)
	assert.Nil(t, cfg.Practice.Duration)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[practice]
words = 60
duration = "45s"
wordlist = "/tmp/words.txt"
smooth = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Practice.Words)
	assert.Equal(t, 60, *cfg.Practice.Words)
	require.NotNil(t, cfg.Practice.Duration)
	assert.Equal(t, 45*time.Second, cfg.Practice.Duration.Duration)
	require.NotNil(t, cfg.Practice.WordList)
	assert.Equal(t, "/tmp/words.txt", *cfg.Practice.WordList)
	require.NotNil(t, cfg.Practice.Smooth)
	assert.Equal(t, 5, *cfg.Practice.Smooth)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad-duration.toml": "[practice]\nduration = \"soon\"\n",
		"unknown-key.toml":  "[practice]\nlang = \"en\"\n",
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err, name)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/cfg", "wattype", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/state", "wattype", "wattype.log"), DefaultLogPath())
}
