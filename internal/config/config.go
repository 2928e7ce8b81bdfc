package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort       = 4000
	defaultEnv        = "development"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultMongoDB    = "stargaze"
	defaultRedisURL   = "redis://localhost:6379/0"
	defaultCookieName = "sg-token"
	defaultTokenTTL   = 7 * 24 * time.Hour
)

// AppConfig holds runtime startup configuration loaded from YAML with
// environment overrides.
type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"` // "development" | "production"
	MongoURI       string   `yaml:"mongo_uri"`
	MongoDB        string   `yaml:"mongo_db"`
	RedisURL       string   `yaml:"redis_url"`
	JWTSecret      string   `yaml:"jwt_secret"`
	TokenTTL       Duration `yaml:"token_ttl"`
	CookieName     string   `yaml:"cookie_name"`
	CookieSecure   *bool    `yaml:"cookie_secure"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Duration is a yaml-friendly time.Duration ("72h", "15m").
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(value.Value))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard-library duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Load reads the YAML config file, then applies .env / environment overrides
// and defaults. A missing config file is not an error: everything has a
// default or an env source.
func Load(path string) (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("SG_PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := strings.TrimSpace(os.Getenv("SG_ENV")); v != "" {
		c.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("MONGODB_URI")); v != "" {
		c.MongoURI = v
	}
	if v := strings.TrimSpace(os.Getenv("MONGODB_DB")); v != "" {
		c.MongoDB = v
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		c.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("JWT_SECRET")); v != "" {
		c.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv("SG_ALLOWED_ORIGINS")); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		c.AllowedOrigins = origins
	}
}

func (c *AppConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Env == "" {
		c.Env = defaultEnv
	}
	if c.MongoURI == "" {
		c.MongoURI = defaultMongoURI
	}
	if c.MongoDB == "" {
		c.MongoDB = defaultMongoDB
	}
	if c.RedisURL == "" {
		c.RedisURL = defaultRedisURL
	}
	if c.TokenTTL == 0 {
		c.TokenTTL = Duration(defaultTokenTTL)
	}
	if c.CookieName == "" {
		c.CookieName = defaultCookieName
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

// SecureCookies reports whether auth cookies should carry the Secure flag.
// Defaults to true outside development.
func (c *AppConfig) SecureCookies() bool {
	if c.CookieSecure != nil {
		return *c.CookieSecure
	}
	return !c.IsDev()
}
