package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConf(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write conf: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "a.conf"), filepath.Join(dir, "b.conf"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFirstExistingPathWins(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.conf")
	first := writeConf(t, dir, "first.conf", "token: first-token\ndeveloper_id: 11\n")
	second := writeConf(t, dir, "second.conf", "token: second-token\ndeveloper_id: 22\n")

	cfg, err := Load(missing, first, second)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.Token != "first-token" {
		t.Fatalf("token = %q, expected first-token", cfg.Telegram.Token)
	}
	if cfg.Telegram.DeveloperID != 11 {
		t.Fatalf("developer_id = %d, expected 11", cfg.Telegram.DeveloperID)
	}
}

func TestLoadSkipsCommentsAndUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	body := "# sunbot configuration\n" +
		"token: abc:def\n" +
		"\n" +
		"bogus_key: whatever\n" +
		"developer_id: 123456\n"
	path := writeConf(t, dir, "sunbot.conf", body)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// values with colons keep everything after the first separator
	if cfg.Telegram.Token != "abc:def" {
		t.Fatalf("token = %q", cfg.Telegram.Token)
	}
	if cfg.Telegram.DeveloperID != 123456 {
		t.Fatalf("developer_id = %d", cfg.Telegram.DeveloperID)
	}
}

func TestLoadRejectsInvalidDeveloperID(t *testing.T) {
	dir := t.TempDir()
	path := writeConf(t, dir, "sunbot.conf", "token: x\ndeveloper_id: notanumber\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for non-numeric developer_id")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "x"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, expected longpoll default", cfg.Telegram.RunMode)
	}
	if cfg.Cache.Dir == "" {
		t.Fatal("cache dir should default to the system temp directory")
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	if err := Normalize(&Config{}); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestNormalizeWebhookValidation(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "x"
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook mode without url/listen/port")
	}

	cfg.Webhook.URL = "https://bot.example.org/hook"
	cfg.Webhook.Listen = "0.0.0.0"
	cfg.Webhook.Port = 8443
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize webhook: %v", err)
	}
}

func TestNormalizeRateLimitExclusions(t *testing.T) {
	cfg := &Config{}
	cfg.Telegram.Token = "x"
	cfg.RateLimit.ExcludeUpdates = []string{" Callback "}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != "callback" {
		t.Fatalf("exclusion = %q, expected callback", cfg.RateLimit.ExcludeUpdates[0])
	}

	cfg.RateLimit.ExcludeUpdates = []string{"inline_query"}
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for unsupported exclusion")
	}
}
