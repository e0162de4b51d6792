package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure
type Config struct {
	Fuzzing    FuzzingConfig    `yaml:"fuzzing"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Output     OutputConfig     `yaml:"output"`
}

// FuzzingConfig holds fuzzing-related configuration
type FuzzingConfig struct {
	Protocol  string   `yaml:"protocol"`
	Strategy  string   `yaml:"strategy"`
	Seed      int64    `yaml:"seed"`
	MaxCases  int      `yaml:"max_cases"`
	SeedFiles []string `yaml:"seed_files"`
}

// MonitoringConfig holds monitoring configuration
type MonitoringConfig struct {
	Enabled        bool   `yaml:"enabled"`
	LogLevel       string `yaml:"log_level"`
	MetricsPort    int    `yaml:"metrics_port"`
	ReportInterval int    `yaml:"report_interval"`
}

// OutputConfig holds output configuration
type OutputConfig struct {
	Directory    string `yaml:"directory"`
	LogDirectory string `yaml:"log_directory"`
}

// LoadConfig loads configuration from the specified YAML file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Fuzzing.Protocol == "" {
		c.Fuzzing.Protocol = "http"
	}
	if c.Fuzzing.Strategy == "" {
		c.Fuzzing.Strategy = "Mutation"
	}
	if c.Fuzzing.MaxCases <= 0 {
		c.Fuzzing.MaxCases = 10000
	}
	if c.Monitoring.MetricsPort == 0 {
		c.Monitoring.MetricsPort = 9090
	}
	if c.Monitoring.ReportInterval <= 0 {
		c.Monitoring.ReportInterval = 30
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "out"
	}
	if c.Output.LogDirectory == "" {
		c.Output.LogDirectory = "logs"
	}
}

// Validate checks the configuration for values the engine cannot run with
func (c *Config) Validate() error {
	if c.Monitoring.MetricsPort < 0 || c.Monitoring.MetricsPort > 65535 {
		return fmt.Errorf("monitoring.metrics_port must be in [0, 65535], got %d", c.Monitoring.MetricsPort)
	}
	return nil
}

// GetMetricsAddress returns the listen address for the metrics endpoint
func (c *Config) GetMetricsAddress() string {
	return fmt.Sprintf(":%d", c.Monitoring.MetricsPort)
}

// GetOutputPath returns the output directory path
func (c *Config) GetOutputPath() string {
	return c.Output.Directory
}

// GetLogPath returns the log directory path
func (c *Config) GetLogPath() string {
	return c.Output.LogDirectory
}

// IsMonitoringEnabled returns whether the metrics endpoint should start
func (c *Config) IsMonitoringEnabled() bool {
	return c.Monitoring.Enabled
}

// PrintConfig prints the loaded configuration
func (c *Config) PrintConfig() {
	fmt.Println("=== Fuzzmaster Configuration ===")
	fmt.Printf("Protocol: %s\n", c.Fuzzing.Protocol)
	fmt.Printf("Strategy: %s\n", c.Fuzzing.Strategy)
	fmt.Printf("Seed: %d\n", c.Fuzzing.Seed)
	fmt.Printf("Max cases: %d\n", c.Fuzzing.MaxCases)
	fmt.Printf("Seed files: %d configured\n", len(c.Fuzzing.SeedFiles))
	fmt.Printf("Monitoring enabled: %v (port %d)\n", c.Monitoring.Enabled, c.Monitoring.MetricsPort)
	fmt.Printf("Output directory: %s\n", c.Output.Directory)
	fmt.Println("================================")
}
