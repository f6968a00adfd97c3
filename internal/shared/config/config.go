package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	// MaxAmountPrecision is the scale of the NUMERIC(10,2) money columns, a finer
	// precision would be rounded by Postgres on insert.
	MaxAmountPrecision = 2
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Log     LogConfig     `mapstructure:"log"`
	Store   StoreConfig   `mapstructure:"store"`
	Bidding BiddingConfig `mapstructure:"bidding"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"max_conns"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StoreConfig selects the persistence backend, "postgres" or "memory".
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

// BiddingConfig holds the rules applied to monetary amounts.
type BiddingConfig struct {
	AmountPrecision int32 `mapstructure:"amount_precision"`
}

// Load reads .env (if present), then environment variables on top of defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	bindings := map[string]string{
		"server.addr":              "SERVER_ADDR",
		"server.shutdown_timeout":  "SERVER_SHUTDOWN_TIMEOUT",
		"db.host":                  "DB_HOST",
		"db.port":                  "DB_PORT",
		"db.user":                  "DB_USER",
		"db.password":              "DB_PASSWORD",
		"db.name":                  "DB_NAME",
		"db.sslmode":               "DB_SSLMODE",
		"db.max_conns":             "DB_MAX_CONNS",
		"auth.jwt_secret":          "JWT_SECRET",
		"log.level":                "LOG_LEVEL",
		"store.driver":             "STORE_DRIVER",
		"bidding.amount_precision": "BIDDING_AMOUNT_PRECISION",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":9000")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "auction_market")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_conns", 10)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", StoreDriverPostgres)
	v.SetDefault("bidding.amount_precision", 2)
}

func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if c.Store.Driver != StoreDriverPostgres && c.Store.Driver != StoreDriverMemory {
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if c.Bidding.AmountPrecision < 0 || c.Bidding.AmountPrecision > MaxAmountPrecision {
		return fmt.Errorf("config: amount precision must be between 0 and %d", MaxAmountPrecision)
	}
	return nil
}

// PostgresDSN builds the connection url used by pgx and golang-migrate.
func (c DBConfig) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}
