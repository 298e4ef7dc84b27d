// Package config loads CLI configuration from flags, environment and an
// optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every tokenizer parameter the CLI exposes.
type Config struct {
	Vocab    VocabConfig    `mapstructure:"vocab"`
	Text     TextConfig     `mapstructure:"text"`
	Windowed WindowedConfig `mapstructure:"windowed"`
	LogLevel string         `mapstructure:"log_level"`
}

type VocabConfig struct {
	NumEmbeddings int `mapstructure:"num_embeddings"`
	PaddingIdx    int `mapstructure:"padding_idx"`
}

type TextConfig struct {
	Ngrams        []int  `mapstructure:"ngrams"`
	SkipGrams     []int  `mapstructure:"skip_grams"`
	MaxPositional int    `mapstructure:"max_positional"`
	Language      string `mapstructure:"language"`
	WholeWords    bool   `mapstructure:"whole_words"`
}

type WindowedConfig struct {
	WindowSize   int     `mapstructure:"window_size"`
	Stride       int     `mapstructure:"stride"`
	PaddingValue float64 `mapstructure:"padding_value"`
	Seed         uint64  `mapstructure:"seed"`
}

// LoadOptions parameterizes Load.
type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Vocab: VocabConfig{
			NumEmbeddings: 50000,
			PaddingIdx:    0,
		},
		Text: TextConfig{
			Ngrams:        []int{3, 4, 5, 6},
			SkipGrams:     []int{2, 3},
			MaxPositional: 10,
			Language:      "en",
		},
		Windowed: WindowedConfig{
			WindowSize:   1000,
			Stride:       100,
			PaddingValue: 0,
			Seed:         0,
		},
		LogLevel: "info",
	}
}

// RegisterFlags declares the CLI flags backing the config keys.
func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("vocab-num-embeddings", defaults.Vocab.NumEmbeddings, "Vocabulary ceiling (embedding table size)")
	fs.Int("vocab-padding-idx", defaults.Vocab.PaddingIdx, "Padding index below the reserved token range")
	fs.IntSlice("text-ngrams", defaults.Text.Ngrams, "Contiguous gram sizes for ngram mode")
	fs.IntSlice("text-skip-grams", defaults.Text.SkipGrams, "Skip-gram steps for ngram mode")
	fs.Int("text-max-positional", defaults.Text.MaxPositional, "Upper bound on character positions")
	fs.String("text-language", defaults.Text.Language, "Syllabification language for rough positional mode")
	fs.Bool("text-whole-words", defaults.Text.WholeWords, "Treat each input line as one pre-segmented word")
	fs.Int("windowed-window-size", defaults.Windowed.WindowSize, "Window length for signal mode")
	fs.Int("windowed-stride", defaults.Windowed.Stride, "Window stride for signal mode")
	fs.Float64("windowed-padding-value", defaults.Windowed.PaddingValue, "Pad value for partial windows")
	fs.Uint64("windowed-seed", defaults.Windowed.Seed, "Random projection seed")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

// Load merges defaults, config file, HASHTOK_* environment variables and
// flags, in increasing precedence.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)

	v.SetEnvPrefix("HASHTOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("vocab.num_embeddings", d.Vocab.NumEmbeddings)
	v.SetDefault("vocab.padding_idx", d.Vocab.PaddingIdx)
	v.SetDefault("text.ngrams", d.Text.Ngrams)
	v.SetDefault("text.skip_grams", d.Text.SkipGrams)
	v.SetDefault("text.max_positional", d.Text.MaxPositional)
	v.SetDefault("text.language", d.Text.Language)
	v.SetDefault("text.whole_words", d.Text.WholeWords)
	v.SetDefault("windowed.window_size", d.Windowed.WindowSize)
	v.SetDefault("windowed.stride", d.Windowed.Stride)
	v.SetDefault("windowed.padding_value", d.Windowed.PaddingValue)
	v.SetDefault("windowed.seed", d.Windowed.Seed)
	v.SetDefault("log_level", d.LogLevel)
}

// bindFlags maps dashed flag names onto dotted config keys, e.g.
// vocab-num-embeddings onto vocab.num_embeddings.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		key := flagToKey(f.Name)
		if key == "" {
			return
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

func flagToKey(name string) string {
	switch {
	case name == "log-level":
		return "log_level"
	case strings.HasPrefix(name, "vocab-"):
		return "vocab." + strings.ReplaceAll(strings.TrimPrefix(name, "vocab-"), "-", "_")
	case strings.HasPrefix(name, "text-"):
		return "text." + strings.ReplaceAll(strings.TrimPrefix(name, "text-"), "-", "_")
	case strings.HasPrefix(name, "windowed-"):
		return "windowed." + strings.ReplaceAll(strings.TrimPrefix(name, "windowed-"), "-", "_")
	default:
		return ""
	}
}
