package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the reportdiff configuration.
type Config struct {
	Format         string      `json:"format"`
	NoRedact       bool        `json:"noRedact"`
	CategoriesFile string      `json:"categoriesFile,omitempty"`
	MaxValueChars  int         `json:"maxValueChars"`
	LLM            LLMConfig   `json:"llm"`
	Cache          CacheConfig `json:"cache"`
}

// LLMConfig controls the optional LLM analysis pass.
type LLMConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
	MaxDiffs int    `json:"maxDiffs"`
}

// CacheConfig controls analysis caching behavior.
type CacheConfig struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Format:        "text",
		MaxValueChars: 120,
		LLM: LLMConfig{
			Provider: "anthropic",
			MaxDiffs: 200,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 86400,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for reportdiff.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "reportdiff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "reportdiff"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "reportdiff"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "reportdiff"), nil
	default:
		return filepath.Join(home, ".config", "reportdiff"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.CategoriesFile != "" {
		dst.CategoriesFile = src.CategoriesFile
	}
	if src.MaxValueChars > 0 {
		dst.MaxValueChars = src.MaxValueChars
	}
	if src.LLM.Provider != "" {
		dst.LLM.Provider = src.LLM.Provider
	}
	if src.LLM.Model != "" {
		dst.LLM.Model = src.LLM.Model
	}
	if src.LLM.MaxDiffs > 0 {
		dst.LLM.MaxDiffs = src.LLM.MaxDiffs
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	// Bool fields from file: JSON zero value for bool is false, so we can't
	// distinguish unset from false in a simple merge. Env and flags can still
	// turn these off.
	dst.Cache.Enabled = src.Cache.Enabled || dst.Cache.Enabled
	dst.NoRedact = src.NoRedact || dst.NoRedact
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("REPORTDIFF_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("REPORTDIFF_CATEGORIES_FILE"); v != "" {
		cfg.CategoriesFile = v
	}
	if v := os.Getenv("REPORTDIFF_MAX_VALUE_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxValueChars = n
		}
	}
	if v := os.Getenv("REPORTDIFF_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("REPORTDIFF_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("REPORTDIFF_NO_REDACT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoRedact = b
		}
	}
	if v := os.Getenv("REPORTDIFF_CACHE_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Cache.Enabled = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["categoriesFile"]; ok && v != "" {
		cfg.CategoriesFile = v
	}
	if v, ok := overrides["maxValueChars"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxValueChars = n
		}
	}
	if v, ok := overrides["llmProvider"]; ok && v != "" {
		cfg.LLM.Provider = v
	}
	if v, ok := overrides["llmModel"]; ok && v != "" {
		cfg.LLM.Model = v
	}
	if v, ok := overrides["noRedact"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoRedact = b
		}
	}
	if v, ok := overrides["noCache"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			cfg.Cache.Enabled = false
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "format":
		cfg.Format = value
	case "categoriesFile":
		cfg.CategoriesFile = value
	case "maxValueChars":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxValueChars must be an integer: %w", err)
		}
		cfg.MaxValueChars = n
	case "noRedact":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("noRedact must be a boolean: %w", err)
		}
		cfg.NoRedact = b
	case "llm.provider":
		cfg.LLM.Provider = value
	case "llm.model":
		cfg.LLM.Model = value
	case "llm.maxDiffs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("llm.maxDiffs must be an integer: %w", err)
		}
		cfg.LLM.MaxDiffs = n
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cache.enabled must be a boolean: %w", err)
		}
		cfg.Cache.Enabled = b
	case "cache.ttlSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.ttlSeconds must be an integer: %w", err)
		}
		cfg.Cache.TTLSeconds = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
