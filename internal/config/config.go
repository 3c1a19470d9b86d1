package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Env  string `yaml:"env"`
		Port string `yaml:"port"`
	} `yaml:"app"`

	Database struct {
		Driver      string `yaml:"driver"`
		Host        string `yaml:"host"`
		Port        string `yaml:"port"`
		User        string `yaml:"user"`
		Password    string `yaml:"password"`
		Name        string `yaml:"name"`
		SSLMode     string `yaml:"sslmode"`
		SQLitePath  string `yaml:"sqlite_path"`
		AutoMigrate bool   `yaml:"auto_migrate"`
		MaxRetries  int    `yaml:"max_retries"`
	} `yaml:"database"`

	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`

	Kafka struct {
		Broker             string        `yaml:"broker"`
		OutboxPollInterval time.Duration `yaml:"outbox_poll_interval"`
	} `yaml:"kafka"`

	JWT struct {
		Secret    string        `yaml:"secret"`
		AccessTTL time.Duration `yaml:"access_ttl"`
	} `yaml:"jwt"`

	Attendance struct {
		RegularHours    float64 `yaml:"regular_hours"`
		FixedBreakHours float64 `yaml:"fixed_break_hours"`
		Timezone        string  `yaml:"timezone"`
	} `yaml:"attendance"`

	RateLimit struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"rate_limit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

// Location resolves the attendance time zone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c.Attendance.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Attendance.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Default() *Config {
	var cfg Config
	cfg.App.Env = "development"
	cfg.App.Port = "8080"
	cfg.Database.Driver = "postgres"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Name = "va_reports"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SQLitePath = "va_reports.db"
	cfg.Database.MaxRetries = 5
	cfg.Redis.Addr = "localhost:6379"
	cfg.Kafka.Broker = "localhost:9092"
	cfg.Kafka.OutboxPollInterval = 2 * time.Second
	cfg.JWT.AccessTTL = 12 * time.Hour
	cfg.Attendance.RegularHours = 8
	cfg.Attendance.FixedBreakHours = 1
	cfg.Attendance.Timezone = "UTC"
	cfg.RateLimit.RPS = 5
	cfg.RateLimit.Burst = 10
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	return &cfg
}

// Load builds the config from defaults, then the YAML file named by
// CONFIG_FILE (or ./config.yaml when present), then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("CONFIG_FILE")
	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	if err := loadFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	// ${VAR} placeholders are replaced only for variables that are set
	content := string(data)
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		content = strings.ReplaceAll(content, "${"+pair[0]+"}", pair[1])
	}

	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.App.Env, "APP_ENV")
	setString(&cfg.App.Port, "PORT")

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.Database.SQLitePath, "SQLITE_PATH")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Kafka.Broker, "KAFKA_BROKER")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.Attendance.Timezone, "ATTENDANCE_TIMEZONE")

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}

	var errs []error
	errs = append(errs,
		setBool(&cfg.Database.AutoMigrate, "DB_AUTO_MIGRATE"),
		setInt(&cfg.Database.MaxRetries, "DB_MAX_RETRIES"),
		setDuration(&cfg.Kafka.OutboxPollInterval, "OUTBOX_POLL_INTERVAL"),
		setDuration(&cfg.JWT.AccessTTL, "JWT_ACCESS_TTL"),
		setFloat(&cfg.Attendance.RegularHours, "ATTENDANCE_REGULAR_HOURS"),
		setFloat(&cfg.Attendance.FixedBreakHours, "ATTENDANCE_FIXED_BREAK_HOURS"),
		setFloat(&cfg.RateLimit.RPS, "RATE_LIMIT_RPS"),
		setInt(&cfg.RateLimit.Burst, "RATE_LIMIT_BURST"),
	)
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}
	*dst = b
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}
	*dst = f
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s value: %w", key, err)
	}
	*dst = d
	return nil
}
