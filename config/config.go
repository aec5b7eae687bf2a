package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Notion configuration.
	NotionAPIURL         string `mapstructure:"NOTION_API_URL"`
	NotionToken          string `mapstructure:"NOTION_TOKEN"`
	NotionTestimonialsDB string `mapstructure:"NOTION_TESTIMONIALS_DB_ID"`
	NotionResponsableID  string `mapstructure:"NOTION_RESPONSABLE_ID"`

	// Slack incoming webhook for the testimonials channel.
	SlackWebhookTestimonials string `mapstructure:"SLACK_WEBHOOK_TESTIMONIALS"`

	// Redis configuration (notification queue broker).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Pacing against the Notion request-rate ceiling.
	SyncChunkSize    int `mapstructure:"SYNC_CHUNK_SIZE"`
	SyncChunkPauseMs int `mapstructure:"SYNC_CHUNK_PAUSE_MS"`
	SearchPauseMs    int `mapstructure:"SEARCH_PAUSE_MS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("NOTION_API_URL", "https://api.notion.com")
	viper.SetDefault("NOTION_TOKEN", "")
	viper.SetDefault("NOTION_TESTIMONIALS_DB_ID", "2f17c005-e400-813e-8953-ea613df5adba")
	viper.SetDefault("NOTION_RESPONSABLE_ID", "25fd872b-594c-8135-9392-000243bdc8ba")
	viper.SetDefault("SLACK_WEBHOOK_TESTIMONIALS", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_QUEUE_DB", 0)
	viper.SetDefault("SYNC_CHUNK_SIZE", 3)
	viper.SetDefault("SYNC_CHUNK_PAUSE_MS", 300)
	viper.SetDefault("SEARCH_PAUSE_MS", 400)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
