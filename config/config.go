package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Placeholder shipped in the sample env file; treated as "no key".
const openAIPlaceholderKey = "your-valid-openai-api-key-here"

type Config struct {
	Server   Server
	Log      Log
	Database Database
	Session  Session
	LLM      LLM
	Airtable Airtable
	Redis    Redis
}

type Server struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
}

type Log struct {
	Level  string
	Format string
}

type Database struct {
	Driver     string
	URL        string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type Session struct {
	Secret       string
	TTL          time.Duration
	CookieSecure bool
}

type LLM struct {
	Provider      string
	Timeout       time.Duration
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	GeminiKey     string
	GeminiModel   string
}

type Airtable struct {
	APIKey    string
	BaseID    string
	TableName string
	View      string
	BaseURL   string
	Timeout   time.Duration
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Configured reports whether all three Airtable identifiers are present.
func (a Airtable) Configured() bool {
	return a.APIKey != "" && a.BaseID != "" && a.TableName != ""
}

// DSN builds a postgres connection string when DATABASE_URL is not set.
func (d Database) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	return load(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "pathway.db")

	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("COOKIE_SECURE", false)

	v.SetDefault("LLM_PROVIDER", "openai")
	v.SetDefault("LLM_TIMEOUT", "30s")
	v.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	v.SetDefault("AIRTABLE_VIEW", "Grid view")
	v.SetDefault("AIRTABLE_BASE_URL", "https://api.airtable.com/v0")
	v.SetDefault("AIRTABLE_TIMEOUT", "15s")

	v.SetDefault("REDIS_DB", 0)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.GinMode = v.GetString("GIN_MODE")
	config.Server.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	config.Log.Level = v.GetString("LOG_LEVEL")
	config.Log.Format = v.GetString("LOG_FORMAT")

	config.Database.Driver = strings.ToLower(v.GetString("DATABASE_DRIVER"))
	config.Database.URL = v.GetString("DATABASE_URL")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")
	config.Database.SQLitePath = v.GetString("SQLITE_PATH")
	if config.Database.Driver != "postgres" && config.Database.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", config.Database.Driver)
	}

	config.Session.Secret = firstNonEmpty(v, "SESSION_SECRET", "JWT_SECRET", "NEXTAUTH_SECRET")
	config.Session.TTL = v.GetDuration("SESSION_TTL")
	config.Session.CookieSecure = v.GetBool("COOKIE_SECURE")
	if config.Session.TTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if config.Session.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		config.Session.Secret = secret
		log.Warn().Msg("SESSION_SECRET is not set. Using a random secret; sessions will not survive a restart.")
	}

	config.LLM.Provider = strings.ToLower(v.GetString("LLM_PROVIDER"))
	config.LLM.Timeout = v.GetDuration("LLM_TIMEOUT")
	config.LLM.OpenAIKey = v.GetString("OPENAI_API_KEY")
	if config.LLM.OpenAIKey == openAIPlaceholderKey {
		config.LLM.OpenAIKey = ""
	}
	config.LLM.OpenAIModel = v.GetString("OPENAI_MODEL")
	config.LLM.OpenAIBaseURL = v.GetString("OPENAI_BASE_URL")
	config.LLM.GeminiKey = v.GetString("GEMINI_API_KEY")
	config.LLM.GeminiModel = v.GetString("GEMINI_MODEL")

	config.Airtable.APIKey = firstNonEmpty(v, "AIRTABLE_API_KEY", "NEXT_PUBLIC_AIRTABLE_API_KEY")
	config.Airtable.BaseID = firstNonEmpty(v, "AIRTABLE_BASE_ID", "NEXT_PUBLIC_AIRTABLE_BASE_ID")
	config.Airtable.TableName = CleanTableName(firstNonEmpty(v, "AIRTABLE_TABLE_NAME", "NEXT_PUBLIC_AIRTABLE_TABLE_NAME"))
	config.Airtable.View = v.GetString("AIRTABLE_VIEW")
	config.Airtable.BaseURL = strings.TrimRight(v.GetString("AIRTABLE_BASE_URL"), "/")
	config.Airtable.Timeout = v.GetDuration("AIRTABLE_TIMEOUT")

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")

	log.Info().
		Str("port", config.Server.Port).
		Str("db_driver", config.Database.Driver).
		Str("llm_provider", config.LLM.Provider).
		Bool("llm_key_set", config.LLM.OpenAIKey != "" || config.LLM.GeminiKey != "").
		Bool("airtable_configured", config.Airtable.Configured()).
		Bool("redis_configured", config.Redis.Addr != "").
		Msg("Config loaded")
	return &config, nil
}

// CleanTableName strips double quotes and surrounding whitespace, which
// deployments commonly leave in the env value.
func CleanTableName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(name, `"`, ""))
}

func firstNonEmpty(v *viper.Viper, keys ...string) string {
	for _, k := range keys {
		if s := strings.TrimSpace(v.GetString(k)); s != "" {
			return s
		}
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
