package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, e := range []string{"STOCKLENS_FMP_API_KEY", "FMP_API_KEY"} {
		os.Unsetenv(e)
	}
}

func TestLoadReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host: got %q, want %q", cfg.API.Host, "0.0.0.0")
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port: got %d, want 8080", cfg.API.Port)
	}
	if cfg.Analysis.CacheTTL != 300 {
		t.Errorf("Analysis.CacheTTL: got %d, want 300", cfg.Analysis.CacheTTL)
	}
	if cfg.Analysis.NewsLimit != 5 {
		t.Errorf("Analysis.NewsLimit: got %d, want 5", cfg.Analysis.NewsLimit)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.FMP.APIKey != "" {
		t.Errorf("FMP.APIKey should default to empty, got %q", cfg.FMP.APIKey)
	}
	if len(cfg.News.Feeds) != 0 {
		t.Errorf("News.Feeds should default to empty, got %v", cfg.News.Feeds)
	}
}

func TestAPIConfigAddr(t *testing.T) {
	c := APIConfig{Host: "127.0.0.1", Port: 9000}
	if got := c.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:9000")
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
fmp:
  api_key: file-key-12345
api:
  port: 9090
news:
  feeds:
    - name: Market Wire
      url: https://example.org/rss
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.FMP.APIKey != "file-key-12345" {
		t.Errorf("FMP.APIKey: got %q", cfg.FMP.APIKey)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port: got %d, want 9090", cfg.API.Port)
	}
	if len(cfg.News.Feeds) != 1 || cfg.News.Feeds[0].Name != "Market Wire" {
		t.Errorf("News.Feeds: got %v", cfg.News.Feeds)
	}
	// Defaults still apply for unset sections.
	if cfg.Analysis.CacheTTL != 300 {
		t.Errorf("Analysis.CacheTTL: got %d, want default 300", cfg.Analysis.CacheTTL)
	}
}

func TestEnvOverridesKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("FMP_API_KEY", "bare-env-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FMP.APIKey != "bare-env-key" {
		t.Errorf("FMP.APIKey: got %q, want bare-env-key", cfg.FMP.APIKey)
	}

	t.Setenv("STOCKLENS_FMP_API_KEY", "prefixed-env-key")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.FMP.APIKey != "prefixed-env-key" {
		t.Errorf("prefixed env should win: got %q", cfg.FMP.APIKey)
	}
}

func TestCheckAPIKeys(t *testing.T) {
	clearEnv(t)

	cfg := &Config{}
	statuses := CheckAPIKeys(cfg)
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	if statuses[0].IsSet || statuses[0].Source != KeySourceNone {
		t.Errorf("unset key status = %+v", statuses[0])
	}

	cfg.FMP.APIKey = "abcdefghijklmnop"
	statuses = CheckAPIKeys(cfg)
	if !statuses[0].IsSet || statuses[0].Source != KeySourceConfig {
		t.Errorf("config key status = %+v", statuses[0])
	}
	if statuses[0].Masked != "abc...nop" {
		t.Errorf("Masked = %q, want abc...nop", statuses[0].Masked)
	}
}

func TestMaskKey(t *testing.T) {
	if got := maskKey("short"); got != "***" {
		t.Errorf("maskKey(short) = %q, want ***", got)
	}
	if got := maskKey("1234567890"); got != "123...890" {
		t.Errorf("maskKey = %q, want 123...890", got)
	}
}
