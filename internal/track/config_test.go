package track

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Policy != "ordered" {
		t.Fatalf("policy=%q want=ordered", cfg.Policy)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chantrack.yaml")
	content := `
tags:
  attention: [wallops]
  priority: [error, mention, chatter]
  normal: [chatter]
policy: simple
ignoreTags: [join]
removeOnDisconnect: false
shorten:
  minLength: 2
  mode: max
exclude: ["#spam"]
showCounts: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Policy != "simple" || cfg.SelectorPolicy() != PolicySimple {
		t.Fatalf("policy=%q", cfg.Policy)
	}
	if cfg.ShortenMode() != ShortenMax {
		t.Fatalf("mode=%v want=ShortenMax", cfg.ShortenMode())
	}
	if cfg.RemoveOnDisconnect {
		t.Fatal("removeOnDisconnect not overridden")
	}
	if len(cfg.Tags.Attention) != 1 || cfg.Tags.Attention[0] != "wallops" {
		t.Fatalf("attention=%v", cfg.Tags.Attention)
	}
	if cfg.Shorten.MinLength != 2 {
		t.Fatalf("minLength=%d want=2", cfg.Shorten.MinLength)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad policy", func(c *Config) { c.Policy = "clever" }},
		{"bad shorten mode", func(c *Config) { c.Shorten.Mode = "sometimes" }},
		{"zero min length", func(c *Config) { c.Shorten.MinLength = 0 }},
		{"empty ranking tag", func(c *Config) { c.Tags.Priority = []Tag{""} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
