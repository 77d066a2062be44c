package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config is read from an optional YAML file, then overridden by environment
// variables. YAML keys are the lower-cased variable names.
type Config struct {
	HTTPPort string `koanf:"http_port"`

	DBHost         string `koanf:"db_host"`
	DBPort         string `koanf:"db_port"`
	DBUser         string `koanf:"db_user"`
	DBPassword     string `koanf:"db_password"`
	DBName         string `koanf:"db_name"`
	DBSslMode      string `koanf:"db_sslmode"`
	DBMaxOpenConns int    `koanf:"db_max_open_conns"`
	DBMaxIdleConns int    `koanf:"db_max_idle_conns"`

	Store string `koanf:"store"`

	KafkaBrokers         string `koanf:"kafka_brokers"`
	KafkaLoadEventsTopic string `koanf:"kafka_load_events_topic"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	LogFile   string `koanf:"log_file"`

	CORSAllowedOrigins    string `koanf:"cors_allowed_origins"`
	FinanceReportSchedule string `koanf:"finance_report_schedule"`
}

var envKeys = map[string]struct{}{
	"http_port": {}, "db_host": {}, "db_port": {}, "db_user": {}, "db_password": {},
	"db_name": {}, "db_sslmode": {}, "db_max_open_conns": {}, "db_max_idle_conns": {},
	"store": {}, "kafka_brokers": {}, "kafka_load_events_topic": {},
	"log_level": {}, "log_format": {}, "log_file": {},
	"cors_allowed_origins": {}, "finance_report_schedule": {},
}

// LoadConfig layers .env (when present), the YAML file at path (when not
// empty) and the process environment.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := envKeys[key]; !ok {
			return ""
		}
		return key
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) SetDefaults() {
	if c.HTTPPort == "" {
		c.HTTPPort = "8080"
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	if c.DBMaxOpenConns == 0 {
		c.DBMaxOpenConns = 25
	}
	if c.DBMaxIdleConns == 0 {
		c.DBMaxIdleConns = 5
	}
	if c.Store == "" {
		c.Store = StorePostgres
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
}

func (c Config) Validate() error {
	var err error
	switch c.Store {
	case StorePostgres:
		if c.DBHost == "" || c.DBUser == "" || c.DBName == "" {
			err = errors.Join(err, errors.New("DB_HOST, DB_USER and DB_NAME are required for the postgres store"))
		}
	case StoreMemory:
	default:
		err = errors.Join(err, fmt.Errorf("unknown STORE %q", c.Store))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		err = errors.Join(err, fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat))
	}
	if c.DBMaxIdleConns > c.DBMaxOpenConns {
		err = errors.Join(err, errors.New("DB_MAX_IDLE_CONNS exceeds DB_MAX_OPEN_CONNS"))
	}
	return err
}

// DSN is the lib/pq connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

func (c Config) AllowedOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
