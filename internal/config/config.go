package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"bookcatalog/internal/book"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Prefix is prepended to every environment variable read by Load.
const Prefix = "BOOKS"

// Config is the runtime configuration of the API server.
type Config struct {
	Addr            string        `envconfig:"ADDR" default:":3000"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	MaxBodyBytes    int64         `envconfig:"MAX_BODY_BYTES" default:"1048576"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS"`
	RateLimitRPS    float64       `envconfig:"RATE_LIMIT_RPS" default:"0"`
	RateLimitBurst  int           `envconfig:"RATE_LIMIT_BURST" default:"20"`
	EnableHSTS      bool          `envconfig:"ENABLE_HSTS" default:"false"`
	SeedFile        string        `envconfig:"SEED_FILE"`
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads .env files and BOOKS_* environment variables.
func Load() (*Config, error) {
	loadEnvFiles()

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MaxBodyBytes <= 0 {
		return errors.New("BOOKS_MAX_BODY_BYTES must be positive")
	}
	if c.RateLimitRPS < 0 {
		return errors.New("BOOKS_RATE_LIMIT_RPS must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		return errors.New("BOOKS_RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}
	return nil
}

type seedFile struct {
	Books []book.Book `yaml:"books" validate:"dive"`
}

var seedValidator = validator.New()

// LoadSeed returns the books the store starts with: the default catalog when
// path is empty, otherwise the `books` list of the YAML file at path.
func LoadSeed(path string) ([]book.Book, error) {
	if path == "" {
		return book.DefaultSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(data)
}

func parseSeed(data []byte) ([]book.Book, error) {
	var f seedFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if err := seedValidator.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}

	seen := make(map[int]bool, len(f.Books))
	for _, b := range f.Books {
		if seen[b.ID] {
			return nil, fmt.Errorf("invalid seed file: duplicate id %d", b.ID)
		}
		seen[b.ID] = true
	}
	if f.Books == nil {
		f.Books = []book.Book{}
	}
	return f.Books, nil
}

// EncodeSeed renders books in the format LoadSeed reads.
func EncodeSeed(books []book.Book) ([]byte, error) {
	f := seedFile{Books: books}
	if err := seedValidator.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return yaml.Marshal(f)
}
