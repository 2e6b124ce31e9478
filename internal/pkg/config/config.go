package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	SecretKey string `env:"SECRET_KEY, default=legalease_ai_advanced_secret_key_2024"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	SQLite SQLiteConfig
	Gemini GeminiConfig
	Mail   MailConfig
	Upload UploadConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=legalease_advanced.db"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL, default=gemini-1.5-flash"`
}

// MailConfig is read at startup but not consumed by any core component yet;
// it mirrors the deployment surface the service is configured with.
type MailConfig struct {
	Server   string `env:"MAIL_SERVER"`
	Port     int    `env:"MAIL_PORT,    default=587"`
	UseTLS   bool   `env:"MAIL_USE_TLS, default=true"`
	Username string `env:"MAIL_USERNAME"`
	Password string `env:"MAIL_PASSWORD"`
}

type UploadConfig struct {
	Dir string `env:"UPLOAD_DIR, default=uploads"`
	// MaxContentLength caps request bodies, 16 MiB by default.
	MaxContentLength int64 `env:"MAX_CONTENT_LENGTH, default=16777216"`
}

// Language pairs a language code with its native display name.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages is the fixed set of interface languages, in display order.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "हिंदी"},
	{Code: "ta", Name: "தமிழ்"},
	{Code: "te", Name: "తెలుగు"},
	{Code: "bn", Name: "বাংলা"},
	{Code: "mr", Name: "मराठी"},
	{Code: "gu", Name: "ગુજરાતી"},
	{Code: "pa", Name: "ਪੰਜਾਬੀ"},
	{Code: "kn", Name: "ಕನ್ನಡ"},
	{Code: "ml", Name: "മലയാളം"},
	{Code: "or", Name: "ଓଡ଼ିଆ"},
	{Code: "as", Name: "অসমীয়া"},
}

// IsSupportedLanguage reports whether code is one of the configured languages.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
