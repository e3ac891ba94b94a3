package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/anthanhphan/gosdk/conflux"
	"github.com/anthanhphan/gosdk/logger"
)

// Config holds proxy node configuration.
type Config struct {
	Server  ServerConfig  `json:"server" yaml:"server"`
	App     AppConfig     `json:"app" yaml:"app"`
	Cluster ClusterConfig `json:"cluster" yaml:"cluster"`
	Pool    PoolConfig    `json:"pool" yaml:"pool"`
	Logger  logger.Config `json:"logger" yaml:"logger"`
}

// ServerConfig carries the listen port and the identity the node advertises
// in Connect replies. The advertised host must match the node's entry in
// every gateway's node list.
type ServerConfig struct {
	Port     int    `json:"port" yaml:"port"`
	Hostname string `json:"hostname" yaml:"hostname"`
	Name     string `json:"name" yaml:"name"`
}

type AppConfig struct {
	ProbeIntervalMS int `json:"probe_interval_ms" yaml:"probe_interval_ms"`
	RetryDelayMS    int `json:"retry_delay_ms" yaml:"retry_delay_ms"`
	ProbeTimeoutMS  int `json:"probe_timeout_ms" yaml:"probe_timeout_ms"`
}

// ClusterConfig lists every proxy node, this one included. The list only
// feeds the local health view used for pool sizing; nodes never talk to each
// other about routing.
type ClusterConfig struct {
	Nodes []NodeConfig `json:"nodes" yaml:"nodes"`
}

type NodeConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
	Name string `json:"name" yaml:"name"`
}

// PoolConfig is the cluster-wide pool budget for a datasource. Each node
// takes its share based on how many nodes it currently sees healthy.
type PoolConfig struct {
	MaxSize int `json:"max_size" yaml:"max_size"`
	MinIdle int `json:"min_idle" yaml:"min_idle"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     9091,
			Hostname: "localhost",
			Name:     "proxy-1",
		},
		App: AppConfig{
			ProbeIntervalMS: 5000,
			RetryDelayMS:    5000,
			ProbeTimeoutMS:  2000,
		},
		Cluster: ClusterConfig{
			Nodes: []NodeConfig{
				{Host: "localhost", Port: 9091, Name: "proxy-1"},
				{Host: "localhost", Port: 9092, Name: "proxy-2"},
				{Host: "localhost", Port: 9093, Name: "proxy-3"},
			},
		},
		Pool: PoolConfig{
			MaxSize: 30,
			MinIdle: 6,
		},
		Logger: logger.Config{
			LogLevel:    logger.LevelInfo,
			LogEncoding: logger.EncodingJSON,
		},
	}
}

// ProbeInterval is how often the node re-checks its peers.
func (c *Config) ProbeInterval() time.Duration {
	return time.Duration(c.App.ProbeIntervalMS) * time.Millisecond
}

// RetryDelay is how long a failed peer stays out of the health view before
// the next probe.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.App.RetryDelayMS) * time.Millisecond
}

// ProbeTimeout bounds a single peer probe.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.App.ProbeTimeoutMS) * time.Millisecond
}

// Load loads configuration from file.
func Load(path string) (*Config, error) {
	configPath := path
	if configPath == "" {
		env := os.Getenv("ENV")
		if env == "" {
			env = "local"
		}
		configPath = filepath.Join("internal", "proxyd", "config", env+".yaml")
	}

	cfg := DefaultConfig()

	parsedCfg, err := conflux.ParseConfig(configPath, cfg)
	if err != nil {
		log.Printf("Config file not found or failed to parse, using defaults if file not specified. Path: %s, Error: %v", configPath, err)
		if path != "" {
			return nil, err
		}
		return cfg, nil
	}

	return parsedCfg, nil
}

// MustLoad loads configuration or exits on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}
