package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port               string        `yaml:"port"                 env:"PORT"                        env-default:"8080"`
	ReadTimeout        time.Duration `yaml:"read_timeout"         env:"SERVER_READ_TIMEOUT"         env-default:"10s"`
	WriteTimeout       time.Duration `yaml:"write_timeout"        env:"SERVER_WRITE_TIMEOUT"        env-default:"30s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"     env:"SERVER_SHUTDOWN_TIMEOUT"     env-default:"10s"`
	AuthResolveTimeout time.Duration `yaml:"auth_resolve_timeout" env:"SERVER_AUTH_RESOLVE_TIMEOUT" env-default:"2s"`
	AllowedOrigins     string        `yaml:"allowed_origins"      env:"ALLOWED_ORIGINS"             env-default:"*"`
	APIKey             string        `yaml:"api_key"              env:"API_KEY"`
	LoginRateLimit     int           `yaml:"login_rate_limit"     env:"LOGIN_RATE_LIMIT"            env-default:"5"`
	LoginRateWindow    time.Duration `yaml:"login_rate_window"    env:"LOGIN_RATE_WINDOW"           env-default:"15m"`
	TrustProxyHeaders  bool          `yaml:"trust_proxy_headers"  env:"TRUST_PROXY_HEADERS"         env-default:"false"`
}

type DBConfig struct {
	Host        string `yaml:"host"         env:"DB_HOST"         env-default:"localhost"`
	Port        string `yaml:"port"         env:"DB_PORT"         env-default:"3306"`
	User        string `yaml:"user"         env:"DB_USER"         env-default:"healthtracker"`
	Password    string `yaml:"password"     env:"DB_PASSWORD"     env-default:"healthtracker_pass"`
	Name        string `yaml:"name"         env:"DB_NAME"         env-default:"healthtracker"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE" env-default:"true"`
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"JWT_SECRET"`
	Issuer     string        `yaml:"issuer"      env:"JWT_ISSUER"     env-default:"healthtracker"`
	TokenTTL   time.Duration `yaml:"token_ttl"   env:"JWT_TOKEN_TTL"  env-default:"720h"`
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE" env-default:"ht_session"`
	LoginPath  string        `yaml:"login_path"  env:"LOGIN_PATH"     env-default:"/login"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	File   string `yaml:"file"   env:"LOG_FILE"`
}

// Load reads CONFIG_PATH (or ./config.yaml when present) and overlays the
// environment. Without a file, only the environment and defaults apply.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET environment variable must be set"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("JWT_TOKEN_TTL must be positive"))
	}
	if c.Server.AuthResolveTimeout <= 0 {
		errs = append(errs, errors.New("SERVER_AUTH_RESOLVE_TIMEOUT must be positive"))
	}
	if c.Server.LoginRateLimit <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) DSN() string {
	return c.DB.User + ":" + c.DB.Password + "@tcp(" + c.DB.Host + ":" + c.DB.Port + ")/" + c.DB.Name + "?parseTime=true&charset=utf8mb4"
}
