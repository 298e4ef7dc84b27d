package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	require.NoError(t, err)

	assert.Equal(t, 50000, cfg.Vocab.NumEmbeddings)
	assert.Equal(t, []int{3, 4, 5, 6}, cfg.Text.Ngrams)
	assert.Equal(t, "en", cfg.Text.Language)
	assert.Equal(t, 1000, cfg.Windowed.WindowSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("vocab:\n  num_embeddings: 1234\ntext:\n  language: th\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(LoadOptions{ConfigFile: path, Defaults: DefaultConfig()})
	require.NoError(t, err)

	assert.Equal(t, 1234, cfg.Vocab.NumEmbeddings)
	assert.Equal(t, "th", cfg.Text.Language)
	// Untouched keys keep their defaults.
	assert.Equal(t, 100, cfg.Windowed.Stride)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{ConfigFile: "/does/not/exist.yaml", Defaults: DefaultConfig()})
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HASHTOK_VOCAB_NUM_EMBEDDINGS", "777")

	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	require.NoError(t, err)
	assert.Equal(t, 777, cfg.Vocab.NumEmbeddings)
}

func TestFlagToKey(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{flag: "vocab-num-embeddings", want: "vocab.num_embeddings"},
		{flag: "text-skip-grams", want: "text.skip_grams"},
		{flag: "windowed-window-size", want: "windowed.window_size"},
		{flag: "log-level", want: "log_level"},
		{flag: "config", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, flagToKey(tt.flag))
		})
	}
}
