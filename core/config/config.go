package config

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// TelegramConfig holds Telegram bot related settings.
type TelegramConfig struct {
	Token       string `conf:"token" envconfig:"BOT_TOKEN"`
	DeveloperID int64  `conf:"developer_id" envconfig:"TELEGRAM_DEVELOPER_ID"`
	RunMode     string `conf:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `conf:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `conf:"webhook_url" envconfig:"WEBHOOK_URL"`
	Listen string `conf:"webhook_listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `conf:"webhook_port" envconfig:"WEBHOOK_PORT"`
}

// LoggingConfig defines logging related configuration.
type LoggingConfig struct {
	Level       string `conf:"log_level"`
	Format      string `conf:"log_format"`
	KeysOrder   string `conf:"log_keys_order"`
	DebugSample string `conf:"log_debug_sample"`
	Dir         string `conf:"log_dir"`
	BotFile     string `conf:"log_file"`
	// Profile indicates environment profile such as "debug" or "prod".
	Profile string `conf:"log_profile"`
}

// RateLimitConfig holds settings for rate limiting.
// ExcludeUpdates accepts update types to bypass limiting:
// - "callback": Telegram callback button presses
// - "message": standard text messages
type RateLimitConfig struct {
	IntervalMS     int      `conf:"rate_limit_interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
	ExcludeUpdates []string `conf:"rate_limit_exclude_updates" envconfig:"RATE_LIMIT_EXCLUDE_UPDATES"`
}

// CacheConfig controls where downloaded bulletins are kept between requests.
type CacheConfig struct {
	Dir string `conf:"cache_dir" envconfig:"CACHE_DIR"`
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

const (
	// UpdateCallback identifies callback updates for rate limit exclusions.
	UpdateCallback = "callback"
	// UpdateMessage identifies message updates for rate limit exclusions.
	UpdateMessage = "message"
)

// Config aggregates the bot configuration.
type Config struct {
	Telegram  TelegramConfig
	Webhook   WebhookConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

// DefaultPaths returns the well-known configuration file locations in
// lookup order: working directory, user local, system wide.
func DefaultPaths() []string {
	paths := []string{"sunbot.conf"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "sunbot.conf"))
	}
	paths = append(paths, "/etc/sunbot.conf")
	return paths
}

// Load reads configuration from the first existing candidate path and
// applies environment variable overrides. All candidates missing is an error.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}

	var path string
	for _, candidate := range paths {
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return nil, fmt.Errorf("configuration file missing, tried: %s", strings.Join(paths, ", "))
	}

	cfg := &Config{}
	if err := parseFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseFile reads line-oriented "key: value" pairs. Blank lines and lines
// starting with '#' are skipped. Unknown keys are logged, not fatal.
func parseFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, found := strings.Cut(line, ":")
		if !found {
			log.Printf("config error: %s", line)
			continue
		}
		if err := applyKey(cfg, strings.TrimSpace(key), strings.TrimSpace(val)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func applyKey(cfg *Config, key, val string) error {
	switch key {
	case "token":
		cfg.Telegram.Token = val
	case "developer_id":
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid developer_id %q: %w", val, err)
		}
		cfg.Telegram.DeveloperID = id
	case "run_mode":
		cfg.Telegram.RunMode = val
	case "longpoll_timeout_seconds":
		sec, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid longpoll_timeout_seconds %q: %w", val, err)
		}
		cfg.Telegram.LongPollTimeoutSeconds = sec
	case "webhook_url":
		cfg.Webhook.URL = val
	case "webhook_listen":
		cfg.Webhook.Listen = val
	case "webhook_port":
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid webhook_port %q: %w", val, err)
		}
		cfg.Webhook.Port = port
	case "log_level":
		cfg.Logging.Level = val
	case "log_format":
		cfg.Logging.Format = val
	case "log_keys_order":
		cfg.Logging.KeysOrder = val
	case "log_debug_sample":
		cfg.Logging.DebugSample = val
	case "log_dir":
		cfg.Logging.Dir = val
	case "log_file":
		cfg.Logging.BotFile = val
	case "log_profile":
		cfg.Logging.Profile = val
	case "rate_limit_interval_ms":
		ms, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid rate_limit_interval_ms %q: %w", val, err)
		}
		cfg.RateLimit.IntervalMS = ms
	case "rate_limit_exclude_updates":
		for _, item := range strings.Split(val, ",") {
			if item = strings.TrimSpace(item); item != "" {
				cfg.RateLimit.ExcludeUpdates = append(cfg.RateLimit.ExcludeUpdates, item)
			}
		}
	case "cache_dir":
		cfg.Cache.Dir = val
	default:
		log.Printf("config error: unknown key %q", key)
	}
	return nil
}

// Normalize performs basic validation of required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" {
		rm = RunModeLongpoll
	}
	if rm == "polling" { // accept alias
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook_url is required when run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook_listen is required when run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook_port must be > 0 when run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	allowed := map[string]struct{}{
		UpdateCallback: {},
		UpdateMessage:  {},
	}
	for i, v := range cfg.RateLimit.ExcludeUpdates {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := allowed[key]; !ok {
			return fmt.Errorf("invalid rate_limit_exclude_updates value %q; allowed: callback, message", v)
		}
		cfg.RateLimit.ExcludeUpdates[i] = key
	}

	if strings.TrimSpace(cfg.Cache.Dir) == "" {
		cfg.Cache.Dir = os.TempDir()
	}
	return nil
}
