package llm

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Built-in defaults when no profile file or overrides are present.
const (
	DefaultModel   = "gpt-4o"
	DefaultBaseURL = "https://api.openai.com/v1"
)

// Profile is one named endpoint configuration: which model to call, where,
// and with which key. Every profile speaks the OpenAI API.
type Profile struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// Profiles holds the named endpoint configurations loaded from the
// profile file, plus the default used when no name is given.
type Profiles struct {
	Default  Profile            `yaml:"default"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// Config holds all LLM configuration for a run.
type Config struct {
	// Provider selects the implementation. Values: "openai", "mock".
	// "mock" exists for tests and dry runs only.
	Provider string

	// ProfilePath is the YAML profile file. Empty means the default
	// location (PIXMO_LLM_CONFIG, then XDG config dir).
	ProfilePath string

	// ProfileName selects a named profile. Empty means the default profile.
	ProfileName string

	// Model, BaseURL and APIKey override the selected profile when set.
	Model   string
	BaseURL string
	APIKey  string

	Retry RetryConfig

	// Timeout is the maximum duration for a single LLM request
	// (excluding retries). Default: 60s.
	Timeout time.Duration
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PIXMO_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if p := os.Getenv("PIXMO_LLM_CONFIG"); p != "" {
		cfg.ProfilePath = p
	}
	if n := os.Getenv("PIXMO_LLM_PROFILE"); n != "" {
		cfg.ProfileName = n
	}
	if m := os.Getenv("PIXMO_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("PIXMO_OPENAI_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if k := os.Getenv("PIXMO_OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.APIKey = k
	}

	return cfg
}

// DefaultProfiles returns the profile set used when no file exists.
func DefaultProfiles() *Profiles {
	return &Profiles{
		Default: Profile{
			Model:   DefaultModel,
			BaseURL: DefaultBaseURL,
		},
	}
}

// LoadProfiles reads the YAML profile file at path. A missing file is not
// an error: the built-in defaults are returned so the tool works with just
// OPENAI_API_KEY set.
func LoadProfiles(path string) (*Profiles, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultProfiles(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	p := DefaultProfiles()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile file %s: %w", path, err)
	}
	if p.Default.Model == "" {
		p.Default.Model = DefaultModel
	}
	if p.Default.BaseURL == "" {
		p.Default.BaseURL = DefaultBaseURL
	}
	return p, nil
}

// ByName returns the profile with the given name. An empty name or the
// literal "default" selects the default profile; the literal form exists
// so --profile default --model X can force the default endpoint for a
// model no profile serves.
func (p *Profiles) ByName(name string) (Profile, error) {
	if name == "" {
		return p.Default, nil
	}
	if prof, ok := p.Profiles[name]; ok {
		return prof, nil
	}
	if name == "default" {
		return p.Default, nil
	}
	return Profile{}, fmt.Errorf("profile %q not found in LLM config", name)
}

// ByModel returns the profile configured for the given model name,
// checking named profiles first and then the default. A model served by
// no profile is an error, matching lookup-by-model in the upstream tool.
func (p *Profiles) ByModel(model string) (Profile, error) {
	for _, prof := range p.Profiles {
		if prof.Model == model {
			return prof, nil
		}
	}
	if p.Default.Model == model {
		return p.Default, nil
	}
	return Profile{}, fmt.Errorf("model %q not served by any profile in LLM config", model)
}

// DefaultProfilePath resolves the profile file location:
// 1. PIXMO_LLM_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/pixmo-docs/llm.yaml
// 3. ~/.config/pixmo-docs/llm.yaml
func DefaultProfilePath() (string, error) {
	if p := os.Getenv("PIXMO_LLM_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "pixmo-docs", "llm.yaml"), nil
}

// Resolve computes the effective Profile for this Config: load the profile
// file, select by name (or by model when only --model is given), then apply
// the explicit overrides.
func (c Config) Resolve() (Profile, error) {
	path := c.ProfilePath
	if path == "" {
		var err error
		path, err = DefaultProfilePath()
		if err != nil {
			return Profile{}, err
		}
	}

	profiles, err := LoadProfiles(path)
	if err != nil {
		return Profile{}, err
	}

	var prof Profile
	switch {
	case c.ProfileName != "":
		prof, err = profiles.ByName(c.ProfileName)
		if err != nil {
			return Profile{}, err
		}
	case c.Model != "":
		prof, err = profiles.ByModel(c.Model)
		if err != nil {
			return Profile{}, err
		}
	default:
		prof = profiles.Default
	}

	if c.Model != "" {
		prof.Model = c.Model
	}
	if c.BaseURL != "" {
		prof.BaseURL = c.BaseURL
	}
	if c.APIKey != "" {
		prof.APIKey = c.APIKey
	}

	return prof, nil
}

// Validate checks that the selected provider can be constructed.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		prof, err := c.Resolve()
		if err != nil {
			return err
		}
		if prof.APIKey == "" {
			return fmt.Errorf("no API key: set OPENAI_API_KEY, PIXMO_OPENAI_API_KEY, or api_key in the profile file")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
