package clickhouse

import "time"

// PoolConfig bounds the database/sql connection pool.
type PoolConfig struct {
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
}

// ClientConfig holds ClickHouse connection settings.
type ClientConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	UseHTTP  bool

	DialTimeout      time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	MaxExecutionTime time.Duration

	Pool PoolConfig
}

// ClientOption configures Client.
type ClientOption func(*ClientConfig)

// WithAddress sets the server host and port. A non-positive port keeps the default.
func WithAddress(host string, port int) ClientOption {
	return func(c *ClientConfig) {
		c.Host = host
		if port > 0 {
			c.Port = port
		}
	}
}

func WithDatabase(database string) ClientOption {
	return func(c *ClientConfig) {
		if database != "" {
			c.Database = database
		}
	}
}

func WithCredentials(user, password string) ClientOption {
	return func(c *ClientConfig) {
		if user != "" {
			c.User = user
		}
		c.Password = password
	}
}

// WithTimeouts sets dial/read/write timeouts; zero values keep the defaults.
func WithTimeouts(dial, read, write time.Duration) ClientOption {
	return func(c *ClientConfig) {
		if dial > 0 {
			c.DialTimeout = dial
		}
		if read > 0 {
			c.ReadTimeout = read
		}
		if write > 0 {
			c.WriteTimeout = write
		}
	}
}

// WithHTTP switches from the native protocol to HTTP.
func WithHTTP(useHTTP bool) ClientOption {
	return func(c *ClientConfig) {
		c.UseHTTP = useHTTP
	}
}

// WithMaxExecutionTime sets the server-side max_execution_time of every query.
func WithMaxExecutionTime(d time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.MaxExecutionTime = d
	}
}

func WithPool(p PoolConfig) ClientOption {
	return func(c *ClientConfig) {
		if p.MaxOpen > 0 {
			c.Pool.MaxOpen = p.MaxOpen
		}
		if p.MaxIdle > 0 {
			c.Pool.MaxIdle = p.MaxIdle
		}
		if p.MaxLifetime > 0 {
			c.Pool.MaxLifetime = p.MaxLifetime
		}
	}
}
