package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (bot token, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, poll interval, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StoreDriverBolt     = "bolt"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Scheduler SchedulerConfig
	Telegram  TelegramConfig
	Reminder  ReminderConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type StoreConfig struct {
	Driver      string        `envconfig:"STORE_DRIVER" default:"bolt"`
	Path        string        `envconfig:"STORE_PATH" default:"reminders.db"`
	OpenTimeout time.Duration `envconfig:"STORE_OPEN_TIMEOUT" default:"1s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"reminders"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"reminders"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
	JSON           bool   `envconfig:"LOG_JSON" default:"true"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER" default:"chat-gateway"`
}

type SchedulerConfig struct {
	Enabled        bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	Interval       time.Duration `envconfig:"SCHEDULER_INTERVAL" default:"5s"`
	CatchUpOnStart bool          `envconfig:"SCHEDULER_CATCH_UP_ON_START" default:"true"` // dispatch reminders missed while down
}

type TelegramConfig struct {
	BotToken      string        `envconfig:"BOT_API_KEY" required:"true"`
	BaseURL       string        `envconfig:"TELEGRAM_BASE_URL" default:"https://api.telegram.org"`
	Timeout       time.Duration `envconfig:"TELEGRAM_TIMEOUT" default:"30s"`
	RatePerSecond float64       `envconfig:"TELEGRAM_RATE_PER_SECOND" default:"25"` // Bot API caps at ~30 msg/s
	Burst         int           `envconfig:"TELEGRAM_BURST" default:"5"`
}

type ReminderConfig struct {
	// TimeZoneOffset is the fixed offset (seconds east of UTC) free-text due times are read in.
	TimeZoneOffset int    `envconfig:"REMINDER_TZ_OFFSET" default:"10800"`
	TimeZoneName   string `envconfig:"REMINDER_TZ_NAME" default:"UTC+3"`
}

func (c *ReminderConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZoneName, c.TimeZoneOffset)
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverBolt, StoreDriverPostgres:
	default:
		return fmt.Errorf("unknown store driver %q (supported: %s, %s)", c.Store.Driver, StoreDriverBolt, StoreDriverPostgres)
	}
	if c.Scheduler.Interval <= 0 {
		return fmt.Errorf("scheduler interval must be positive, got %s", c.Scheduler.Interval)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver:      StoreDriverBolt,
			Path:        "reminders_test.db",
			OpenTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Moscow",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
			Issuer: "chat-gateway",
		},
		Scheduler: SchedulerConfig{
			Enabled:        true,
			Interval:       50 * time.Millisecond,
			CatchUpOnStart: true,
		},
		Telegram: TelegramConfig{
			BotToken:      "test-token",
			BaseURL:       "http://127.0.0.1:0",
			Timeout:       time.Second,
			RatePerSecond: 1000,
			Burst:         100,
		},
		Reminder: ReminderConfig{
			TimeZoneOffset: 10800,
			TimeZoneName:   "UTC+3",
		},
	}
}
