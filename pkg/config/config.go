package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"SmartInvest/pkg/util"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName     string `yaml:"app_name"`
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		SlowThreshold   time.Duration `yaml:"slow_threshold"`
		CORSOrigins     []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	MarketData struct {
		Provider       string        `yaml:"provider"`        // yahoo | clickhouse
		CryptoProvider string        `yaml:"crypto_provider"` // yahoo | binance
		YahooBaseURL   string        `yaml:"yahoo_base_url"`
		Timeout        time.Duration `yaml:"timeout"`
		LookbackDays   int           `yaml:"lookback_days"`
		Binance        struct {
			APIKey    string `yaml:"api_key"`
			SecretKey string `yaml:"secret_key"`
		} `yaml:"binance"`
	} `yaml:"market_data"`
	News struct {
		APIKey   string        `yaml:"api_key"`
		BaseURL  string        `yaml:"base_url"`
		PageSize int           `yaml:"page_size"`
		Timeout  time.Duration `yaml:"timeout"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"news"`
	RateLimit struct {
		Enabled           bool   `yaml:"enabled"`
		Backend           string `yaml:"backend"` // memory | redis
		RequestsPerMinute int    `yaml:"requests_per_minute"`
		Burst             int    `yaml:"burst"`
	} `yaml:"rate_limit"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	} `yaml:"redis"`
	Postgres struct {
		Enabled      bool   `yaml:"enabled"`
		DSN          string `yaml:"dsn"`
		MaxOpenConns int    `yaml:"max_open_conns"`
		MaxIdleConns int    `yaml:"max_idle_conns"`
	} `yaml:"postgres"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled"`
		Brokers      []string `yaml:"brokers"`
		AlertsTopic  string   `yaml:"alerts_topic"`
		LogsTopic    string   `yaml:"logs_topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	Scheduler struct {
		Enabled        bool   `yaml:"enabled"`
		AlertSweepCron string `yaml:"alert_sweep_cron"`
	} `yaml:"scheduler"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads .env (if present), the YAML config and then applies environment overrides.
func LoadWithEnv(path string) (*Config, error) {
	// .env is optional; real environment variables always win over it
	_ = godotenv.Load()

	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Default returns a config populated with the values used when the YAML omits a key.
func Default() *Config {
	c := &Config{AppName: "SmartInvest AI", Environment: "development"}
	c.Server.Port = 8000
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 30 * time.Second
	c.Server.ShutdownTimeout = 10 * time.Second
	c.Server.SlowThreshold = 2 * time.Second
	c.Server.CORSOrigins = []string{"*"}
	c.Logging.Level = "info"
	c.Logging.Format = "console"
	c.Logging.Output = "stdout"
	c.Metrics.Enabled = true
	c.Metrics.Path = "/metrics"
	c.MarketData.Provider = "yahoo"
	c.MarketData.CryptoProvider = "yahoo"
	c.MarketData.YahooBaseURL = "https://query1.finance.yahoo.com"
	c.MarketData.Timeout = 15 * time.Second
	c.MarketData.LookbackDays = 365
	c.News.BaseURL = "https://newsapi.org"
	c.News.PageSize = 10
	c.News.Timeout = 10 * time.Second
	c.RateLimit.Backend = "memory"
	c.RateLimit.RequestsPerMinute = 60
	c.RateLimit.Burst = 10
	c.Redis.Host = "localhost"
	c.Redis.Port = 6379
	c.Redis.Prefix = "smartinvest"
	c.Postgres.MaxOpenConns = 10
	c.Postgres.MaxIdleConns = 5
	c.ClickHouse.Port = 9000
	c.ClickHouse.Database = "smartinvest"
	c.Kafka.AlertsTopic = "smartinvest.alerts"
	c.Kafka.LogsTopic = "smartinvest.logs"
	c.Kafka.RequiredAcks = -1
	c.Kafka.Compression = "gzip"
	c.Scheduler.AlertSweepCron = "0 */15 * * * *"
	return c
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		c.News.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Postgres.DSN = v
		c.Postgres.Enabled = true
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		c.Redis.Host = host
		if ok {
			c.Redis.Port = util.ParseIntDefault(port, c.Redis.Port)
		}
		c.Redis.Enabled = true
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
		c.Kafka.Enabled = true
	}
	if v := os.Getenv("BINANCE_API_KEY"); v != "" {
		c.MarketData.Binance.APIKey = v
	}
	if v := os.Getenv("BINANCE_SECRET_KEY"); v != "" {
		c.MarketData.Binance.SecretKey = v
	}
	if v := os.Getenv("MARKET_DATA_PROVIDER"); v != "" {
		c.MarketData.Provider = v
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.MarketData.Provider {
	case "yahoo", "clickhouse":
	default:
		return fmt.Errorf("market_data.provider must be 'yahoo' or 'clickhouse', got '%s'", c.MarketData.Provider)
	}
	switch c.MarketData.CryptoProvider {
	case "yahoo", "binance":
	default:
		return fmt.Errorf("market_data.crypto_provider must be 'yahoo' or 'binance', got '%s'", c.MarketData.CryptoProvider)
	}
	if c.MarketData.Provider == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required when market_data.provider is 'clickhouse'")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Backend != "memory" && c.RateLimit.Backend != "redis" {
			return fmt.Errorf("rate_limit.backend must be 'memory' or 'redis', got '%s'", c.RateLimit.Backend)
		}
		if c.RateLimit.Backend == "redis" && !c.Redis.Enabled {
			return fmt.Errorf("rate_limit.backend 'redis' requires redis.enabled")
		}
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("rate_limit.requests_per_minute must be positive")
		}
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when kafka is enabled")
	}
	if c.Postgres.Enabled && c.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required when postgres is enabled")
	}
	return nil
}
