package kafka

import "time"

// BatchConfig controls how the writer groups messages before a flush.
type BatchConfig struct {
	Size    int
	Bytes   int
	Timeout time.Duration
}

// ProducerConfig holds producer settings. Zero values passed through options keep the defaults.
type ProducerConfig struct {
	Brokers      []string
	RequiredAcks int
	MaxAttempts  int
	Compression  string
	Balancer     string // hash | least_bytes
	WriteTimeout time.Duration
	ReadTimeout  time.Duration
	Batch        BatchConfig
}

// ProducerOption configures Producer.
type ProducerOption func(*ProducerConfig)

func defaultProducerConfig() ProducerConfig {
	return ProducerConfig{
		RequiredAcks: -1,
		MaxAttempts:  3,
		Compression:  "gzip",
		Balancer:     "hash",
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
		Batch: BatchConfig{
			Size:    100,
			Bytes:   1 << 20,
			Timeout: 50 * time.Millisecond,
		},
	}
}

func WithBrokers(brokers ...string) ProducerOption {
	return func(c *ProducerConfig) {
		c.Brokers = append([]string(nil), brokers...)
	}
}

// WithDelivery sets the ack level (-1 waits for all replicas) and the writer retry budget.
func WithDelivery(acks, maxAttempts int) ProducerOption {
	return func(c *ProducerConfig) {
		c.RequiredAcks = acks
		if maxAttempts > 0 {
			c.MaxAttempts = maxAttempts
		}
	}
}

// WithCompression accepts gzip, snappy, lz4 or zstd.
func WithCompression(codec string) ProducerOption {
	return func(c *ProducerConfig) {
		if codec != "" {
			c.Compression = codec
		}
	}
}

// WithBalancer picks the partitioner. "hash" keeps all events of one key on one partition.
func WithBalancer(name string) ProducerOption {
	return func(c *ProducerConfig) {
		if name != "" {
			c.Balancer = name
		}
	}
}

func WithBatching(b BatchConfig) ProducerOption {
	return func(c *ProducerConfig) {
		if b.Size > 0 {
			c.Batch.Size = b.Size
		}
		if b.Bytes > 0 {
			c.Batch.Bytes = b.Bytes
		}
		if b.Timeout > 0 {
			c.Batch.Timeout = b.Timeout
		}
	}
}

func WithTimeouts(write, read time.Duration) ProducerOption {
	return func(c *ProducerConfig) {
		if write > 0 {
			c.WriteTimeout = write
		}
		if read > 0 {
			c.ReadTimeout = read
		}
	}
}
