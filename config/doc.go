// Package config loads streamkit configuration from YAML files and
// environment variables via viper.
//
// Defaults cover queue capacities, parallel worker counts, and rate
// limits so pipelines behave sensibly with zero configuration:
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//	    ...
//	}
//	cfg.ApplyDefaults()
//
// Environment variables use the STREAMKIT_ prefix with underscores for
// nesting, e.g. STREAMKIT_QUEUE_CAPACITY=128.
package config
