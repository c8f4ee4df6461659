package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Language routing
	Language        LanguageConfig
	GoogleTranslate GoogleTranslateConfig
	Dispatch        DispatchConfig
	Session         SessionConfig

	// Delivery
	Telegram TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LanguageConfig is the identifier policy table. It is re-read on config file change.
type LanguageConfig struct {
	Detector          string   // lingua, whatlang, google or keyword
	Candidates        []string // ISO 639-1 codes the local detectors choose from; read at startup only
	MinConfidence     float64  // 0 accepts every en/de answer of the detector
	MatchMode         string   // word or substring
	GermanIndicators  []string
	EnglishIndicators []string
}

type GoogleTranslateConfig struct {
	APIKey          string
	CredentialsPath string
}

type DispatchConfig struct {
	Strategy    string // label or team
	Temperature float64
	MaxTokens   int
}

type SessionConfig struct {
	CookieName      string
	MaxSessions     int
	TTL             time.Duration
	RateLimitPerMin int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// TimeoutDuration parses Timeout, returning 0 when unset or malformed.
func (p ProviderConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(p.Timeout)
	return d
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Language routing
	cfg.Language = loadLanguage()

	cfg.GoogleTranslate.APIKey = expandEnvVar(viper.GetString("google_translate.api_key"))
	cfg.GoogleTranslate.CredentialsPath = viper.GetString("google_translate.credentials_path")
	if creds := viper.GetString("google_translate_credentials"); creds != "" {
		cfg.GoogleTranslate.CredentialsPath = creds
	}

	cfg.Dispatch.Strategy = viper.GetString("dispatch.strategy")
	cfg.Dispatch.Temperature = viper.GetFloat64("dispatch.temperature")
	cfg.Dispatch.MaxTokens = viper.GetInt("dispatch.max_tokens")

	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.RateLimitPerMin = viper.GetInt("session.rate_limit_per_min")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}
	if err := validateLanguage(cfg.Language); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WatchLanguage re-reads the language section whenever the config file changes
// and hands the new table to apply. Invalid tables are reported to onError and skipped.
func WatchLanguage(apply func(LanguageConfig), onError func(error)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		lang := loadLanguage()
		if err := validateLanguage(lang); err != nil {
			if onError != nil {
				onError(fmt.Errorf("config reload %s: %w", e.Name, err))
			}
			return
		}
		apply(lang)
	})
	viper.WatchConfig()
}

func loadLanguage() LanguageConfig {
	return LanguageConfig{
		Detector:          viper.GetString("language.detector"),
		Candidates:        viper.GetStringSlice("language.candidates"),
		MinConfidence:     viper.GetFloat64("language.min_confidence"),
		MatchMode:         viper.GetString("language.match_mode"),
		GermanIndicators:  viper.GetStringSlice("language.indicators.german"),
		EnglishIndicators: viper.GetStringSlice("language.indicators.english"),
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("language.detector", "lingua")
	viper.SetDefault("language.candidates", DefaultCandidateLanguages)
	viper.SetDefault("language.min_confidence", 0.0)
	viper.SetDefault("language.match_mode", "word")
	viper.SetDefault("language.indicators.german", DefaultGermanIndicators)
	viper.SetDefault("language.indicators.english", DefaultEnglishIndicators)

	viper.SetDefault("dispatch.strategy", "label")
	viper.SetDefault("dispatch.temperature", 0.7)

	viper.SetDefault("session.cookie_name", "chat_session")
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.rate_limit_per_min", 30)

	// The dispatcher calls the model once per message; retries are opt-in.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// DefaultCandidateLanguages covers the languages users most often write in
// besides English and German, so those are recognized as unsupported.
var DefaultCandidateLanguages = []string{
	"en", "de", "fr", "es", "it", "pt", "nl", "da", "sv", "nb", "pl", "tr", "ru", "ar", "zh", "ja",
}

// DefaultGermanIndicators are common German function words.
var DefaultGermanIndicators = []string{
	"ich", "du", "der", "die", "das", "und", "ist", "mit", "für", "auf", "von", "zu", "im", "über",
}

// DefaultEnglishIndicators are common English function words.
var DefaultEnglishIndicators = []string{
	"the", "and", "is", "with", "for", "on", "from", "to", "in", "over", "this", "that",
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}

		enabledCount++
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func validateLanguage(cfg LanguageConfig) error {
	switch cfg.Detector {
	case "lingua", "whatlang", "google", "keyword":
	default:
		return fmt.Errorf("language.detector: unknown detector %q", cfg.Detector)
	}
	switch cfg.MatchMode {
	case "word", "substring":
	default:
		return fmt.Errorf("language.match_mode: unknown mode %q", cfg.MatchMode)
	}
	if cfg.MinConfidence < 0 || cfg.MinConfidence > 1 {
		return fmt.Errorf("language.min_confidence: %v out of range [0,1]", cfg.MinConfidence)
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
