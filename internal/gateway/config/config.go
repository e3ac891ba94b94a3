package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/anthanhphan/gosdk/conflux"
	"github.com/anthanhphan/gosdk/logger"
)

// Config holds gateway configuration.
type Config struct {
	Server     ServerConfig     `json:"server" yaml:"server"`
	App        AppConfig        `json:"app" yaml:"app"`
	Cluster    ClusterConfig    `json:"cluster" yaml:"cluster"`
	Pool       PoolConfig       `json:"pool" yaml:"pool"`
	Datasource DatasourceConfig `json:"datasource" yaml:"datasource"`
	Redis      RedisConfig      `json:"redis" yaml:"redis"`
	Logger     logger.Config    `json:"logger" yaml:"logger"`
}

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

type AppConfig struct {
	NodeID             int64   `json:"node_id" yaml:"node_id"`
	MaxRetries         int     `json:"max_retries" yaml:"max_retries"`
	EstablishTimeoutMS int     `json:"establish_timeout_ms" yaml:"establish_timeout_ms"`
	RetryDelayMS       int     `json:"retry_delay_ms" yaml:"retry_delay_ms"`
	ProbeTimeoutMS     int     `json:"probe_timeout_ms" yaml:"probe_timeout_ms"`
	RebalanceFraction  float64 `json:"rebalance_fraction" yaml:"rebalance_fraction"`
	MaxInvalidations   int     `json:"max_invalidations_per_recovery" yaml:"max_invalidations_per_recovery"`
}

// ClusterConfig is the resolved node list. The list is fixed for the life of
// the process; only node health changes at runtime.
type ClusterConfig struct {
	Nodes []NodeConfig `json:"nodes" yaml:"nodes"`
}

type NodeConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
	Name string `json:"name" yaml:"name"`
}

type PoolConfig struct {
	MaxSize int `json:"max_size" yaml:"max_size"`
	MinIdle int `json:"min_idle" yaml:"min_idle"`
}

type DatasourceConfig struct {
	DSN      string `json:"dsn" yaml:"dsn"`
	User     string `json:"user" yaml:"user"`
	Database string `json:"database" yaml:"database"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8090",
		},
		App: AppConfig{
			NodeID:             1,
			MaxRetries:         3,
			EstablishTimeoutMS: 10000,
			RetryDelayMS:       5000,
			ProbeTimeoutMS:     2000,
			RebalanceFraction:  0.5,
			MaxInvalidations:   10,
		},
		Cluster: ClusterConfig{
			Nodes: []NodeConfig{
				{Host: "localhost", Port: 9091, Name: "proxy-1"},
				{Host: "localhost", Port: 9092, Name: "proxy-2"},
				{Host: "localhost", Port: 9093, Name: "proxy-3"},
			},
		},
		Pool: PoolConfig{
			MaxSize: 10,
			MinIdle: 2,
		},
		Datasource: DatasourceConfig{
			DSN:      "postgres://localhost:5432/app",
			User:     "app",
			Database: "app",
		},
		Logger: logger.Config{
			LogLevel:    logger.LevelInfo,
			LogEncoding: logger.EncodingJSON,
		},
	}
}

// EstablishTimeout returns the session-establishment timeout as a duration.
func (c *Config) EstablishTimeout() time.Duration {
	return time.Duration(c.App.EstablishTimeoutMS) * time.Millisecond
}

// RetryDelay returns how long a failed node stays out of rotation before the
// next probe.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.App.RetryDelayMS) * time.Millisecond
}

// ProbeTimeout bounds a single recovery probe.
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
		configPath = filepath.Join("internal", "gateway", "config", env+".yaml")
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
