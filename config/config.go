package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Store          StoreConfig
	OpenAI         OpenAIConfig
	Supabase       SupabaseConfig
	GoogleCalendar GoogleCalendarConfig

	Chat     ChatConfig
	Notifier NotifierConfig
	Sync     SyncConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
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

type StoreConfig struct {
	Path string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type SupabaseConfig struct {
	URL    string
	APIKey string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
}

type ChatConfig struct {
	RateLimitPerMin int
}

type NotifierConfig struct {
	Interval time.Duration
}

type SyncConfig struct {
	QueueSize int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Local store
	cfg.Store.Path = viper.GetString("store.path")

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai.api_key is required - set OPENAI_API_KEY or openai.api_key in config.yaml")
	}

	// Supabase mirror (optional)
	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.APIKey = viper.GetString("supabase.api_key")
	if url := viper.GetString("supabase_url"); url != "" {
		cfg.Supabase.URL = url
	}
	if key := viper.GetString("supabase_api_key"); key != "" {
		cfg.Supabase.APIKey = key
	}

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	if creds := viper.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}

	// Chat, notifier, sync
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Notifier.Interval = viper.GetDuration("notifier.interval")
	cfg.Sync.QueueSize = viper.GetInt("sync.queue_size")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "Europe/Madrid")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("store.path", "data/lucas.db")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("chat.rate_limit_per_min", 20)
	viper.SetDefault("notifier.interval", "30s")
	viper.SetDefault("sync.queue_size", 256)
}
