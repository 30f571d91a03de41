// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	//LinkedIn credentials. Both empty => anonymous mode.
	LinkedInEmail    string `yaml:"linkedin_email"`
	LinkedInPassword string `yaml:"linkedin_password"`

	//Scraping policy
	Headless          bool     `yaml:"headless"`
	RequestDelay      int      `yaml:"request_delay_seconds"`
	RequestTimeout    int      `yaml:"request_timeout_seconds"`
	MaxJobsPerRequest int      `yaml:"max_jobs_per_request"`
	RequestsPerMinute int      `yaml:"requests_per_minute"`
	TargetSkills      []string `yaml:"target_skills"`

	//Paths
	CookiesPath string `yaml:"cookies_path"`
	CachePath   string `yaml:"cache_path"`
	OutputDir   string `yaml:"output_dir"`

	//Optional integrations
	DatabaseURL    string `yaml:"database_url"`
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`

	//Server
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

// Load reads configs/config.yaml plus environment overrides and exits on
// invalid configuration. Use LoadFrom when the caller wants the error back.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := LoadFrom("configs/config.yaml")
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func LoadFrom(path string) (*Config, error) {
	cfg := &Config{Headless: true}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Anonymous reports whether the scraper runs without a LinkedIn login.
func (c *Config) Anonymous() bool {
	return c.LinkedInEmail == "" || c.LinkedInPassword == ""
}

func (c *Config) applyEnv() {
	if email := os.Getenv("LINKEDIN_EMAIL"); email != "" {
		c.LinkedInEmail = email
	}
	if password := os.Getenv("LINKEDIN_PASSWORD"); password != "" {
		c.LinkedInPassword = password
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		c.DatabaseURL = dbURL
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		c.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Printf("Warning: invalid TELEGRAM_CHAT_ID: %v", err)
		} else {
			c.TelegramChatID = id
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if delay := os.Getenv("REQUEST_DELAY_SECONDS"); delay != "" {
		if v, err := strconv.Atoi(delay); err == nil {
			c.RequestDelay = v
		}
	}
	if headless := os.Getenv("HEADLESS"); headless != "" {
		c.Headless = headless != "false" && headless != "0"
	}
}

func (c *Config) applyDefaults() {
	if c.RequestDelay == 0 {
		c.RequestDelay = 2
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 10
	}
	if c.MaxJobsPerRequest == 0 {
		c.MaxJobsPerRequest = 50
	}
	if c.RequestsPerMinute == 0 {
		c.RequestsPerMinute = 5
	}
	if c.CookiesPath == "" {
		c.CookiesPath = ".cookies"
	}
	if c.CachePath == "" {
		c.CachePath = ".cache"
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	var errs []error

	if c.RequestDelay < 0 {
		errs = append(errs, fmt.Errorf("request_delay_seconds must not be negative, got %d", c.RequestDelay))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request_timeout_seconds must be positive, got %d", c.RequestTimeout))
	}
	if c.MaxJobsPerRequest <= 0 {
		errs = append(errs, fmt.Errorf("max_jobs_per_request must be positive, got %d", c.MaxJobsPerRequest))
	}
	if c.RequestsPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("requests_per_minute must be positive, got %d", c.RequestsPerMinute))
	}
	if (c.LinkedInEmail == "") != (c.LinkedInPassword == "") {
		errs = append(errs, errors.New("LINKEDIN_EMAIL and LINKEDIN_PASSWORD must be set together"))
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == 0) {
		errs = append(errs, errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
