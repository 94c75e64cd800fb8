// Package config owns the explicit startup phase: load the environment,
// read the optional config file, apply defaults, and validate the
// effective settings once all overrides are in.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Pipeline variants.
const (
	PipelineDirect    = "direct"
	PipelineRetrieval = "retrieval"
)

// Config holds process-wide settings. It is constructed once at startup and
// passed by reference into the runner and clients; nothing reads it as an
// ambient global, so tests can substitute a fake client.
type Config struct {
	Provider     string   `yaml:"provider"`
	Model        string   `yaml:"model"`
	Temperature  *float64 `yaml:"temperature"`
	Pipeline     string   `yaml:"pipeline"`
	TopK         int      `yaml:"top_k"`
	ChunkSize    int      `yaml:"chunk_size"`
	ChunkOverlap int      `yaml:"chunk_overlap"`

	Logger *slog.Logger `yaml:"-"`
}

func (c *Config) defaults() {
	if c.Provider == "" {
		c.Provider = "openai"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Pipeline == "" {
		c.Pipeline = PipelineDirect
	}
	if c.TopK <= 0 {
		c.TopK = 3
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = 1024
	}
	if c.ChunkOverlap < 0 {
		c.ChunkOverlap = 0
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Load builds the configuration: a .env file if one exists, then the
// optional YAML file at path (empty path skips it), then defaults.
// Credentials are not checked here — callers may still override the
// provider (CLI flags) before running Validate.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.defaults()

	if cfg.Pipeline != PipelineDirect && cfg.Pipeline != PipelineRetrieval {
		return nil, fmt.Errorf("unknown pipeline: %q", cfg.Pipeline)
	}
	return &cfg, nil
}

// Validate checks the effective configuration once all overrides are
// applied: the pipeline must be known and the environment must carry the
// credential for the selected provider (plus the embedding credential for
// the retrieval pipeline). A failure here aborts startup — the only fatal
// category.
func (c *Config) Validate() error {
	if c.Pipeline != PipelineDirect && c.Pipeline != PipelineRetrieval {
		return fmt.Errorf("unknown pipeline: %q", c.Pipeline)
	}
	if _, err := c.Credential(); err != nil {
		return err
	}
	if c.Pipeline == PipelineRetrieval {
		if _, err := c.EmbeddingCredential(); err != nil {
			return err
		}
	}
	return nil
}

// Credential returns the API key for the configured provider.
func (c *Config) Credential() (string, error) {
	var names []string
	switch c.Provider {
	case "openai":
		names = []string{"OPENAI_API_KEY"}
	case "gemini", "google":
		names = []string{"GOOGLE_API_KEY", "GEMINI_API_KEY"}
	case "anthropic", "claude":
		names = []string{"ANTHROPIC_API_KEY"}
	case "static":
		return "", nil
	default:
		return "", fmt.Errorf("unknown provider: %q", c.Provider)
	}
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("missing credential: set %s", names[0])
}

// EmbeddingCredential returns the key used by the retrieval pipeline's
// embedder, which always talks to OpenAI.
func (c *Config) EmbeddingCredential() (string, error) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("missing credential: retrieval pipeline requires OPENAI_API_KEY")
}
