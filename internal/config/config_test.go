package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider != "openai" || cfg.Model != "gpt-4o-mini" || cfg.Pipeline != PipelineDirect {
		t.Errorf("defaults: %+v", cfg)
	}
	if cfg.TopK != 3 || cfg.ChunkSize != 1024 {
		t.Errorf("retrieval defaults: %+v", cfg)
	}
	if cfg.Logger == nil {
		t.Error("logger not defaulted")
	}
}

func TestLoad_SucceedsWithoutCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	// Load must not insist on the default provider's key: a later
	// --provider override may select a different one entirely.
	if _, err := Load(""); err != nil {
		t.Fatalf("load should not check credentials: %v", err)
	}
}

func TestValidate_MissingCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected validation failure without credential")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("error should name the variable: %v", err)
	}
}

func TestValidate_OverriddenProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Provider = "anthropic"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("anthropic key is set, validation should pass: %v", err)
	}
}

func TestValidate_StaticNeedsNoKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg := &Config{Provider: "static", Pipeline: PipelineDirect}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("static provider needs no credential: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")

	dir := t.TempDir()
	path := filepath.Join(dir, "docanalyzer.yaml")
	body := "provider: anthropic\nmodel: claude-3-5-haiku-latest\npipeline: direct\nchunk_size: 512\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider != "anthropic" || cfg.Model != "claude-3-5-haiku-latest" || cfg.ChunkSize != 512 {
		t.Errorf("config: %+v", cfg)
	}
}

func TestLoad_UnknownPipeline(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("pipeline: psychic\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown pipeline")
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate_RetrievalRequiresEmbeddingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")
	t.Setenv("OPENAI_API_KEY", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte("provider: anthropic\npipeline: retrieval\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error: retrieval pipeline without OPENAI_API_KEY")
	}
}

func TestCredential_StaticNeedsNothing(t *testing.T) {
	cfg := &Config{Provider: "static"}
	if _, err := cfg.Credential(); err != nil {
		t.Fatalf("static credential: %v", err)
	}
}
