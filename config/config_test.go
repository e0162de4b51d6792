package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig tests loading configuration from file
func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "test_config.yaml")

	configContent := `
fuzzing:
  protocol: "dns"
  strategy: "Generation"
  seed: 12345
  max_cases: 1000
  seed_files:
    - "seeds/http_get.bin"
    - "seeds/dns_query.bin"

monitoring:
  enabled: true
  log_level: "debug"
  metrics_port: 9191
  report_interval: 60

output:
  directory: "/tmp/fuzz_output"
  log_directory: "/tmp/fuzz_logs"
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	config, err := LoadConfig(configFile)

	assert.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "dns", config.Fuzzing.Protocol)
	assert.Equal(t, "Generation", config.Fuzzing.Strategy)
	assert.Equal(t, int64(12345), config.Fuzzing.Seed)
	assert.Equal(t, 1000, config.Fuzzing.MaxCases)
	assert.Len(t, config.Fuzzing.SeedFiles, 2)

	assert.True(t, config.IsMonitoringEnabled())
	assert.Equal(t, ":9191", config.GetMetricsAddress())
	assert.Equal(t, 60, config.Monitoring.ReportInterval)

	assert.Equal(t, "/tmp/fuzz_output", config.GetOutputPath())
	assert.Equal(t, "/tmp/fuzz_logs", config.GetLogPath())
}

// TestLoadConfigDefaults tests that an empty config gets usable defaults
func TestLoadConfigDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "empty.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("{}"), 0644))

	config, err := LoadConfig(configFile)
	require.NoError(t, err)

	assert.Equal(t, "http", config.Fuzzing.Protocol)
	assert.Equal(t, "Mutation", config.Fuzzing.Strategy)
	assert.Equal(t, 10000, config.Fuzzing.MaxCases)
	assert.Equal(t, 9090, config.Monitoring.MetricsPort)
	assert.Equal(t, "logs", config.GetLogPath())
}

// TestLoadConfigMissingFile tests loading a nonexistent file
func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfigInvalidYAML tests loading malformed YAML
func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "bad.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("fuzzing: ["), 0644))

	config, err := LoadConfig(configFile)
	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestValidateMetricsPort tests port range validation
func TestValidateMetricsPort(t *testing.T) {
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "port.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("monitoring:\n  metrics_port: 70000\n"), 0644))

	config, err := LoadConfig(configFile)
	assert.Error(t, err)
	assert.Nil(t, config)
}
