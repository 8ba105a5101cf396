package cache

import "time"

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string

	PoolSize     int
	MinIdleConns int
	PoolTimeout  time.Duration
	DialTimeout  time.Duration
}

// RedisOption configures RedisCache.
type RedisOption func(*RedisConfig)

func defaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:         "localhost",
		Port:         6379,
		Prefix:       "smartinvest",
		PoolSize:     10,
		MinIdleConns: 2,
		PoolTimeout:  30 * time.Second,
		DialTimeout:  5 * time.Second,
	}
}

// WithRedisAddress sets host and port. Empty or non-positive values keep the defaults.
func WithRedisAddress(host string, port int) RedisOption {
	return func(c *RedisConfig) {
		if host != "" {
			c.Host = host
		}
		if port > 0 {
			c.Port = port
		}
	}
}

func WithRedisAuth(password string, db int) RedisOption {
	return func(c *RedisConfig) {
		c.Password = password
		c.DB = db
	}
}

// WithKeyPrefix namespaces every key as "<prefix>:<key>".
func WithKeyPrefix(prefix string) RedisOption {
	return func(c *RedisConfig) {
		if prefix != "" {
			c.Prefix = prefix
		}
	}
}

func WithRedisPool(size, minIdle int) RedisOption {
	return func(c *RedisConfig) {
		if size > 0 {
			c.PoolSize = size
		}
		if minIdle >= 0 {
			c.MinIdleConns = minIdle
		}
	}
}

// MemoryConfig holds in-process cache settings.
type MemoryConfig struct {
	Capacity      int
	SweepInterval time.Duration
}

// MemoryOption configures MemoryCache.
type MemoryOption func(*MemoryConfig)

// WithCapacity bounds the number of live keys; the least recently read key is evicted first.
func WithCapacity(n int) MemoryOption {
	return func(c *MemoryConfig) {
		if n > 0 {
			c.Capacity = n
		}
	}
}

// WithSweepInterval sets how often expired keys are purged in the background.
func WithSweepInterval(d time.Duration) MemoryOption {
	return func(c *MemoryConfig) {
		if d > 0 {
			c.SweepInterval = d
		}
	}
}
