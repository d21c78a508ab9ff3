// Package config loads runtime settings: built-in defaults, then an optional YAML
// file (CONFIG_PATH), then environment variables (a local .env file is honored).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const devJWTSecret = "super-secret-key-change-this-in-prod"

type Config struct {
	Environment      string        `yaml:"environment"`
	HTTPAddr         string        `yaml:"http_addr"`
	DatabasePath     string        `yaml:"database_path"`
	JWTSecret        string        `yaml:"jwt_secret"`
	InviteCode       string        `yaml:"invite_code"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"`
	SystemPromptFile string        `yaml:"system_prompt_file"`
	FrontendDir      string        `yaml:"frontend_dir"`
	CORSAllowOrigins []string      `yaml:"cors_allow_origins"`
	LLM              LLMConfig     `yaml:"llm"`
	Voice            VoiceConfig   `yaml:"voice"`
	Log              LogConfig     `yaml:"log"`
}

type LLMConfig struct {
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// VoiceConfig enables spoken input and output when CredentialsFile is set.
type VoiceConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
	LanguageCode    string `yaml:"language_code"`
	VoiceName       string `yaml:"voice_name"`
}

func (v VoiceConfig) Enabled() bool {
	return v.CredentialsFile != ""
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns development settings. The JWT secret must be replaced in production.
func Default() *Config {
	return &Config{
		Environment:    "development",
		HTTPAddr:       ":5002",
		DatabasePath:   "data/diet_app.db",
		JWTSecret:      devJWTSecret,
		AccessTokenTTL: 24 * time.Hour,
		FrontendDir:    "frontend",
		LLM: LLMConfig{
			BaseURL: "https://api.groq.com/openai/v1",
			Model:   "llama-3.1-8b-instant",
			Timeout: 60 * time.Second,
		},
		Voice: VoiceConfig{
			LanguageCode: "en-US",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the final configuration and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Environment, "APP_ENV")
	setString(&c.HTTPAddr, "HTTP_ADDR")
	setString(&c.DatabasePath, "DATABASE_PATH")
	setString(&c.JWTSecret, "JWT_SECRET_KEY")
	setString(&c.InviteCode, "SIGNUP_INVITE_CODE")
	setString(&c.SystemPromptFile, "SYSTEM_PROMPT_FILE")
	setString(&c.FrontendDir, "FRONTEND_DIR")
	setString(&c.LLM.APIKey, "GROQ_API_KEY")
	setString(&c.LLM.APIKey, "LLM_API_KEY")
	setString(&c.LLM.BaseURL, "LLM_BASE_URL")
	setString(&c.LLM.Model, "LLM_MODEL")
	setString(&c.Voice.CredentialsFile, "GOOGLE_APPLICATION_CREDENTIALS")
	setString(&c.Voice.LanguageCode, "VOICE_LANGUAGE")
	setString(&c.Voice.VoiceName, "VOICE_NAME")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")

	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.CORSAllowOrigins = splitList(v)
	}
	if err := setDuration(&c.AccessTokenTTL, "ACCESS_TOKEN_TTL"); err != nil {
		return err
	}
	if err := setDuration(&c.LLM.Timeout, "LLM_TIMEOUT"); err != nil {
		return err
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("config: LLM_TEMPERATURE: %w", err)
		}
		c.LLM.Temperature = float32(f)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return errors.New("config: LLM_API_KEY (or GROQ_API_KEY) is required")
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET_KEY must not be empty")
	}
	if c.IsProduction() && c.JWTSecret == devJWTSecret {
		return errors.New("config: JWT_SECRET_KEY must be set in production")
	}
	if c.AccessTokenTTL <= 0 {
		return errors.New("config: ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// SystemPrompt returns the contents of SystemPromptFile, or "" when unset.
func (c *Config) SystemPrompt() (string, error) {
	if c.SystemPromptFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.SystemPromptFile)
	if err != nil {
		return "", fmt.Errorf("config: failed to read system prompt: %w", err)
	}
	return string(data), nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
