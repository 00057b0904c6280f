package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("USERPROFILE", os.Getenv("HOME"))
}

func TestLoad_Defaults(t *testing.T) {
	setup(t)
	t.Setenv(DebugEnv, "")
	t.Setenv("SHAREXT_DEBUG", "")
	Load("")

	assert.False(t, Debug())
	assert.Equal(t, "info", LogLevel())
	assert.False(t, ShowSecrets())
}

func TestLoad_DebugFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"debug", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			setup(t)
			t.Setenv(DebugEnv, tt.value)
			Load("")
			assert.Equal(t, tt.want, Debug())
		})
	}
}

func TestIsDebugValue(t *testing.T) {
	for _, v := range []string{"1", "true", "True", "yes", "on", "x"} {
		assert.True(t, IsDebugValue(v), v)
	}
	for _, v := range []string{"", " ", "0", "false", "False"} {
		assert.False(t, IsDebugValue(v), v)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	setup(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("SHAREXT_LOG_LEVEL=debug\n"), 0644))
	t.Setenv("SHAREXT_LOG_LEVEL", "")
	os.Unsetenv("SHAREXT_LOG_LEVEL")

	Load(root)
	assert.Equal(t, "debug", LogLevel())
}

func TestSetGet(t *testing.T) {
	setup(t)
	Load("")

	require.NoError(t, Set(KeyLogLevel, "warn"))
	assert.Equal(t, "warn", Get(KeyLogLevel))
	_, err := os.Stat(FilePath())
	assert.NoError(t, err)

	viper.Reset()
	Load("")
	assert.Equal(t, "warn", LogLevel(), "value persisted to the config file")
}
