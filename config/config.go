package config

import (
	"log/slog"
	"os"
	"strconv"
)

type AppConfig struct {
	Port                 string
	RedditBaseURL        string
	RedditOAuthURL       string
	RedditUserAgent      string
	RedditClientID       string
	RedditClientSecret   string
	ProxyURL             string
	PostgresURL          string
	KeycloakClientID     string
	KeycloakClientSecret string
	KeycloakRealm        string
	KeycloakURL          string
	DetectLanguage       bool
	LogLevel             slog.Level
}

var Config AppConfig

func LoadConfig() {
	cfg := AppConfig{}

	cfg.Port = loadOptional("PORT", "8080")
	cfg.RedditBaseURL = loadOptional("REDDIT_BASE_URL", "https://www.reddit.com")
	cfg.RedditOAuthURL = loadOptional("REDDIT_OAUTH_URL", "https://oauth.reddit.com")
	cfg.RedditUserAgent = loadOptional("REDDIT_USER_AGENT", "RedditGrowPro:1.0 (by /u/RedditGrowProBot)")
	cfg.RedditClientID = os.Getenv("REDDIT_CLIENT_ID")
	cfg.RedditClientSecret = os.Getenv("REDDIT_CLIENT_SECRET")
	cfg.ProxyURL = os.Getenv("PROXY_URL")
	cfg.PostgresURL = os.Getenv("POSTGRES_URL")

	// Private routes need the whole Keycloak block or none of it. The client
	// credentials are used for token introspection.
	cfg.KeycloakURL = os.Getenv("KEYCLOAK_URL")
	if cfg.KeycloakURL != "" {
		cfg.KeycloakRealm = loadRequired("KEYCLOAK_REALM")
		cfg.KeycloakClientID = loadRequired("KEYCLOAK_CLIENT_ID")
		cfg.KeycloakClientSecret = loadRequired("KEYCLOAK_CLIENT_SECRET")
	}

	detect, err := strconv.ParseBool(loadOptional("DETECT_LANGUAGE", "true"))
	if err != nil {
		slog.Error("Invalid DETECT_LANGUAGE", "error", err)
		detect = true
	}
	cfg.DetectLanguage = detect

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	Config = cfg
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Required env var not set", "key", key)
		os.Exit(1)
	}
	return value
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (c AppConfig) OAuthEnabled() bool {
	return c.RedditClientID != "" && c.RedditClientSecret != ""
}

func (c AppConfig) AuthEnabled() bool {
	return c.KeycloakURL != ""
}
