package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BasicConfig.ServerAddress != ":8000" {
		t.Fatalf("unexpected address %q", cfg.BasicConfig.ServerAddress)
	}
	if cfg.Provider.Name != "openai" || cfg.Provider.Model != "gpt-3.5-turbo" {
		t.Fatalf("unexpected provider defaults: %+v", cfg.Provider)
	}
	if cfg.RateLimit.Requests != 5 || cfg.RateLimit.WindowSeconds != 60 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.MaxUploadBytes() != 10<<20 {
		t.Fatalf("unexpected upload limit %d", cfg.MaxUploadBytes())
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"basic_config": {"server_address": ":9000", "max_upload_mb": 2},
		"provider": {"name": "Claude", "model": "claude-3-haiku"},
		"rate_limit": {"requests": 10},
		"redis": {"enabled": true, "host": "cache"}
	}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BasicConfig.ServerAddress != ":9000" || cfg.MaxUploadBytes() != 2<<20 {
		t.Fatalf("basic config not applied: %+v", cfg.BasicConfig)
	}
	if cfg.Provider.Name != "claude" || cfg.Provider.Model != "claude-3-haiku" {
		t.Fatalf("provider not applied: %+v", cfg.Provider)
	}
	if cfg.RateLimit.Requests != 10 || cfg.RateLimit.WindowSeconds != 60 {
		t.Fatalf("rate limit not merged with defaults: %+v", cfg.RateLimit)
	}
	if cfg.Redis.Port != 6379 {
		t.Fatalf("expected default redis port, got %d", cfg.Redis.Port)
	}
	if len(cfg.BasicConfig.AllowedOrigins) != 1 || cfg.BasicConfig.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard origins, got %v", cfg.BasicConfig.AllowedOrigins)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[basic_config]
server_address = ":7000"
allowed_origins = ["http://localhost:5173"]

[provider]
name = "gemini"
model = "gemini-2.0-flash"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BasicConfig.ServerAddress != ":7000" {
		t.Fatalf("unexpected address %q", cfg.BasicConfig.ServerAddress)
	}
	if cfg.Provider.Name != "gemini" {
		t.Fatalf("unexpected provider %q", cfg.Provider.Name)
	}
	if got := cfg.BasicConfig.AllowedOrigins; len(got) != 1 || got[0] != "http://localhost:5173" {
		t.Fatalf("unexpected origins %v", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"provider": `{"provider": {"name": "llama"}}`,
		"redis":    `{"redis": {"enabled": true}}`,
		"limit":    `{"rate_limit": {"requests": -1}}`,
		"syntax":   `{"provider": `,
	}
	for name, body := range cases {
		path := writeFile(t, name+".json", body)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REPLYGEN_ADDR", ":1234")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Provider.APIKey != "sk-test" {
		t.Fatalf("api key not loaded from env")
	}
	if cfg.BasicConfig.ServerAddress != ":1234" {
		t.Fatalf("address not overridden: %q", cfg.BasicConfig.ServerAddress)
	}

	cfg = Default()
	cfg.Provider.APIKey = "from-file"
	cfg.ApplyEnv()
	if cfg.Provider.APIKey != "from-file" {
		t.Fatalf("env must not override configured key")
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
