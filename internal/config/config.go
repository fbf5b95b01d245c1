package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Upload    UploadConfig
	Generator GeneratorConfig
	DB        DBConfig
	JWT       JWTConfig
	Storage   StorageConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// UploadConfig holds limits applied to uploaded PDFs.
type UploadConfig struct {
	MaxFileSizeMB  int64         `mapstructure:"max_file_size_mb"`
	MinTextChars   int           `mapstructure:"min_text_chars"`
	ExtractTimeout time.Duration `mapstructure:"extract_timeout"`
}

// MaxBytes returns the upload size limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB << 20
}

// GeneratorConfig overrides the question generator knobs. Zero values keep the generator defaults.
type GeneratorConfig struct {
	MinSentenceLen       int `mapstructure:"min_sentence_len"`
	MinParagraphLen      int `mapstructure:"min_paragraph_len"`
	MinWordLen           int `mapstructure:"min_word_len"`
	KeyTermCount         int `mapstructure:"key_term_count"`
	SentencesPerQuestion int `mapstructure:"sentences_per_question"`
	MaxPerDocument       int `mapstructure:"max_per_document"`
	MaxQuestions         int `mapstructure:"max_questions"`
	ExcerptLen           int `mapstructure:"excerpt_len"`
}

// DBConfig holds PostgreSQL connection settings. The test catalog is only served when Enabled.
type DBConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// StorageConfig holds settings for archiving source PDFs.
type StorageConfig struct {
	Provider  string `mapstructure:"provider"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from an optional .env file and environment variables with the
// TESTPRO_ prefix.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config.Load: ignoring .env: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix("TESTPRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3001")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)
	v.SetDefault("upload.min_text_chars", 100)
	v.SetDefault("upload.extract_timeout", "45s")

	// Generator defaults (0 = generator built-in)
	v.SetDefault("generator.min_sentence_len", 0)
	v.SetDefault("generator.min_paragraph_len", 0)
	v.SetDefault("generator.min_word_len", 0)
	v.SetDefault("generator.key_term_count", 0)
	v.SetDefault("generator.sentences_per_question", 0)
	v.SetDefault("generator.max_per_document", 0)
	v.SetDefault("generator.max_questions", 0)
	v.SetDefault("generator.excerpt_len", 0)

	// DB defaults
	v.SetDefault("db.enabled", false)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "testpro")
	v.SetDefault("db.password", "testpro_secret")
	v.SetDefault("db.name", "testpro_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "testpro")

	// Storage defaults
	v.SetDefault("storage.provider", "noop")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "testpro-sources")
	v.SetDefault("storage.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "info")

	// CORS defaults (Vite dev server)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                      "TESTPRO_SERVER_PORT",
		"server.read_timeout":              "TESTPRO_SERVER_READ_TIMEOUT",
		"server.write_timeout":             "TESTPRO_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":          "TESTPRO_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":               "TESTPRO_SERVER_ENVIRONMENT",
		"upload.max_file_size_mb":          "TESTPRO_UPLOAD_MAX_FILE_SIZE_MB",
		"upload.min_text_chars":            "TESTPRO_UPLOAD_MIN_TEXT_CHARS",
		"upload.extract_timeout":           "TESTPRO_UPLOAD_EXTRACT_TIMEOUT",
		"generator.min_sentence_len":       "TESTPRO_GENERATOR_MIN_SENTENCE_LEN",
		"generator.min_paragraph_len":      "TESTPRO_GENERATOR_MIN_PARAGRAPH_LEN",
		"generator.min_word_len":           "TESTPRO_GENERATOR_MIN_WORD_LEN",
		"generator.key_term_count":         "TESTPRO_GENERATOR_KEY_TERM_COUNT",
		"generator.sentences_per_question": "TESTPRO_GENERATOR_SENTENCES_PER_QUESTION",
		"generator.max_per_document":       "TESTPRO_GENERATOR_MAX_PER_DOCUMENT",
		"generator.max_questions":          "TESTPRO_GENERATOR_MAX_QUESTIONS",
		"generator.excerpt_len":            "TESTPRO_GENERATOR_EXCERPT_LEN",
		"db.enabled":                       "TESTPRO_DB_ENABLED",
		"db.host":                          "TESTPRO_DB_HOST",
		"db.port":                          "TESTPRO_DB_PORT",
		"db.user":                          "TESTPRO_DB_USER",
		"db.password":                      "TESTPRO_DB_PASSWORD",
		"db.name":                          "TESTPRO_DB_NAME",
		"db.sslmode":                       "TESTPRO_DB_SSLMODE",
		"db.max_open":                      "TESTPRO_DB_MAX_OPEN",
		"db.max_idle":                      "TESTPRO_DB_MAX_IDLE",
		"jwt.secret":                       "TESTPRO_JWT_SECRET",
		"jwt.expiry":                       "TESTPRO_JWT_EXPIRY",
		"jwt.issuer":                       "TESTPRO_JWT_ISSUER",
		"storage.provider":                 "TESTPRO_STORAGE_PROVIDER",
		"storage.region":                   "TESTPRO_STORAGE_REGION",
		"storage.bucket":                   "TESTPRO_STORAGE_BUCKET",
		"storage.endpoint":                 "TESTPRO_STORAGE_ENDPOINT",
		"storage.access_key":               "TESTPRO_STORAGE_ACCESS_KEY",
		"storage.secret_key":               "TESTPRO_STORAGE_SECRET_KEY",
		"cors.allowed_origins":             "TESTPRO_CORS_ALLOWED_ORIGINS",
		"log.level":                        "TESTPRO_LOG_LEVEL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set PORT. Use it if TESTPRO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TESTPRO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB:  v.GetInt64("upload.max_file_size_mb"),
		MinTextChars:   v.GetInt("upload.min_text_chars"),
		ExtractTimeout: v.GetDuration("upload.extract_timeout"),
	}
	cfg.Generator = GeneratorConfig{
		MinSentenceLen:       v.GetInt("generator.min_sentence_len"),
		MinParagraphLen:      v.GetInt("generator.min_paragraph_len"),
		MinWordLen:           v.GetInt("generator.min_word_len"),
		KeyTermCount:         v.GetInt("generator.key_term_count"),
		SentencesPerQuestion: v.GetInt("generator.sentences_per_question"),
		MaxPerDocument:       v.GetInt("generator.max_per_document"),
		MaxQuestions:         v.GetInt("generator.max_questions"),
		ExcerptLen:           v.GetInt("generator.excerpt_len"),
	}
	cfg.DB = DBConfig{
		Enabled:  v.GetBool("db.enabled"),
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Expiry: v.GetDuration("jwt.expiry"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.Storage = StorageConfig{
		Provider:  v.GetString("storage.provider"),
		Region:    v.GetString("storage.region"),
		Bucket:    v.GetString("storage.bucket"),
		Endpoint:  v.GetString("storage.endpoint"),
		AccessKey: v.GetString("storage.access_key"),
		SecretKey: v.GetString("storage.secret_key"),
	}
	cfg.Log = LogConfig{
		Level: strings.ToLower(v.GetString("log.level")),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	if cfg.Upload.MaxFileSizeMB <= 0 {
		return nil, fmt.Errorf("config.Load: upload.max_file_size_mb must be positive, got %d", cfg.Upload.MaxFileSizeMB)
	}

	return cfg, nil
}
