package config

import (
	"fmt"

	"github.com/kbukum/streamkit/logger"
)

// QueueConfig holds bounded queue defaults.
type QueueConfig struct {
	// Capacity is the default queue buffer capacity.
	Capacity int `yaml:"capacity" mapstructure:"capacity"`
	// ForkCapacity is the default buffer capacity of forker forks.
	ForkCapacity int `yaml:"fork_capacity" mapstructure:"fork_capacity"`
}

// ParallelConfig holds parallel mapping defaults.
type ParallelConfig struct {
	// Workers is the default worker count for ParallelMap.
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateConfig holds rate limiter defaults.
type RateConfig struct {
	// PermitsPerSecond is the default permit rate.
	PermitsPerSecond float64 `yaml:"permits_per_second" mapstructure:"permits_per_second"`
	// Burst is the default burst size.
	Burst int `yaml:"burst" mapstructure:"burst"`
}

// Config is the root streamkit configuration.
type Config struct {
	Logging  logger.Config  `yaml:"logging" mapstructure:"logging"`
	Queue    QueueConfig    `yaml:"queue" mapstructure:"queue"`
	Parallel ParallelConfig `yaml:"parallel" mapstructure:"parallel"`
	Rate     RateConfig     `yaml:"rate" mapstructure:"rate"`
}

// ApplyDefaults applies default values to unset fields.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Queue.Capacity == 0 {
		c.Queue.Capacity = 1
	}
	if c.Queue.ForkCapacity == 0 {
		c.Queue.ForkCapacity = 64
	}
	if c.Parallel.Workers == 0 {
		c.Parallel.Workers = 4
	}
	if c.Rate.PermitsPerSecond == 0 {
		c.Rate.PermitsPerSecond = 10.0
	}
	if c.Rate.Burst == 0 {
		c.Rate.Burst = 20
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if c.Queue.Capacity < 0 {
		return fmt.Errorf("queue.capacity must not be negative (got: %d)", c.Queue.Capacity)
	}
	if c.Queue.ForkCapacity < 0 {
		return fmt.Errorf("queue.fork_capacity must not be negative (got: %d)", c.Queue.ForkCapacity)
	}
	if c.Parallel.Workers < 1 {
		return fmt.Errorf("parallel.workers must be at least 1 (got: %d)", c.Parallel.Workers)
	}
	if c.Rate.PermitsPerSecond <= 0 {
		return fmt.Errorf("rate.permits_per_second must be positive (got: %g)", c.Rate.PermitsPerSecond)
	}
	return nil
}
