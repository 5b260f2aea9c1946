// Package config manages TOML config for corrigo's CLI drivers: the engine
// weight constants, corpus file paths, and per-driver CLI defaults. InitConfig
// handles automatic file creation and loading with fallback to defaults;
// LoadConfig/SaveConfig give direct file access for callers that manage their
// own path (pkg/ipc's server reloads its config file every 100 requests, for
// instance).
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Corpus CorpusConfig `toml:"corpus"`
	CLI    CLIConfig    `toml:"cli"`
}

// EngineConfig holds the edit-distance weight formula's multipliers and the
// default suggestion count. The field names mirror the multipliers named in
// the scoring formula, not generic knobs. pkg/editgen uses its own built-in
// constants and does not read these fields; only DefaultTopK is read, by
// pkg/ipc's server.
type EngineConfig struct {
	LeadingDiscount float64 `toml:"leading_discount"`
	InsertMult      float64 `toml:"insert_mult"`
	DeleteMult      float64 `toml:"delete_mult"`
	ReplaceMult     float64 `toml:"replace_mult"`
	PhoneticMult    float64 `toml:"phonetic_mult"`
	DefaultTopK     int     `toml:"default_topk"`
	EnableEdits2    bool    `toml:"enable_edits2"`
}

// CorpusConfig points at the frequency files pkg/spell.New loads.
type CorpusConfig struct {
	UnigramPath    string `toml:"unigram_path"`
	BigramPath     string `toml:"bigram_path"`
	WhitelistPath  string `toml:"whitelist_path"`
	SoundexPath    string `toml:"soundex_path"`
	SkipMalformed  bool   `toml:"skip_malformed_lines"`
}

// CLIConfig holds the cmd/spell, cmd/bigspell and cmd/benchmark drivers'
// shared defaults.
type CLIConfig struct {
	DefaultCount int  `toml:"default_count"`
	Verbose      bool `toml:"verbose"`
}

// DefaultConfig returns a Config whose weights equal the constants built into
// pkg/editgen, used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			LeadingDiscount: 0.001,
			InsertMult:      10.0,
			DeleteMult:      0.1,
			ReplaceMult:     0.1,
			PhoneticMult:    20.0,
			DefaultTopK:     1,
			EnableEdits2:    true,
		},
		Corpus: CorpusConfig{
			UnigramPath:   "dict/unigram.txt",
			BigramPath:    "dict/bigram.txt",
			WhitelistPath: "",
			SoundexPath:   "dict/soundex.txt",
			SkipMalformed: false,
		},
		CLI: CLIConfig{
			DefaultCount: 1,
			Verbose:      false,
		},
	}
}

// InitConfig loads config from file or creates a default one if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("created default config file at %s", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("failed to decode config file: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("failed to create config file: %v", err)
		return err
	}
	defer file.Close()
	encoder := toml.NewEncoder(file)
	return encoder.Encode(cfg)
}

// Update changes the engine's DefaultTopK and EnableEdits2 fields and saves
// to file, leaving any nil argument untouched.
func (c *Config) Update(configPath string, topK *int, enableEdits2 *bool) error {
	if topK != nil {
		c.Engine.DefaultTopK = *topK
	}
	if enableEdits2 != nil {
		c.Engine.EnableEdits2 = *enableEdits2
	}
	return SaveConfig(c, configPath)
}
