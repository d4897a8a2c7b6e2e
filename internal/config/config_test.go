package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paveg/rowframe/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultValues(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, 10, cfg.DisplayRows)
	assert.InDelta(t, 0.75, cfg.JoinIndexLoadFactor, 0.001)
	assert.InDelta(t, 1.3, cfg.JoinIndexCapacityFactor, 0.001)
	assert.False(t, cfg.VerboseLogging)
	assert.False(t, cfg.MetricsCollection)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validation(t *testing.T) {
	tests := []struct {
		name          string
		config        config.Config
		expectedError string
	}{
		{
			name: "valid config",
			config: config.Config{
				DisplayRows:             5,
				JoinIndexLoadFactor:     0.5,
				JoinIndexCapacityFactor: 2,
			},
		},
		{
			name: "non-positive display rows",
			config: config.Config{
				DisplayRows:             0,
				JoinIndexLoadFactor:     0.5,
				JoinIndexCapacityFactor: 2,
			},
			expectedError: "DisplayRows must be positive, got 0",
		},
		{
			name: "load factor above one",
			config: config.Config{
				DisplayRows:             5,
				JoinIndexLoadFactor:     1.5,
				JoinIndexCapacityFactor: 2,
			},
			expectedError: "JoinIndexLoadFactor must be in (0, 1], got 1.500000",
		},
		{
			name: "capacity factor below one",
			config: config.Config{
				DisplayRows:             5,
				JoinIndexLoadFactor:     0.5,
				JoinIndexCapacityFactor: 0.5,
			},
			expectedError: "JoinIndexCapacityFactor must be at least 1, got 0.500000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectedError == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tt.expectedError)
			}
		})
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := config.Config{DisplayRows: 3, VerboseLogging: true}.WithDefaults()

	assert.Equal(t, 3, cfg.DisplayRows)
	assert.InDelta(t, config.DefaultJoinIndexLoadFactor, cfg.JoinIndexLoadFactor, 0.001)
	assert.InDelta(t, config.DefaultJoinIndexCapacityFactor, cfg.JoinIndexCapacityFactor, 0.001)
	assert.True(t, cfg.VerboseLogging)
}

func TestLoadFromJSON(t *testing.T) {
	cfg, err := config.LoadFromJSON([]byte(`{"display_rows": 20, "metrics_collection": true}`))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.DisplayRows)
	assert.True(t, cfg.MetricsCollection)
	assert.InDelta(t, config.DefaultJoinIndexLoadFactor, cfg.JoinIndexLoadFactor, 0.001)

	_, err = config.LoadFromJSON([]byte(`{invalid`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON configuration")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "rowframe.yaml")
		content := "display_rows: 7\njoin_index_load_factor: 0.5\nverbose_logging: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.DisplayRows)
		assert.InDelta(t, 0.5, cfg.JoinIndexLoadFactor, 0.001)
		assert.True(t, cfg.VerboseLogging)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "rowframe.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"join_index_capacity_factor": 2.5}`), 0o600))

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assert.InDelta(t, 2.5, cfg.JoinIndexCapacityFactor, 0.001)
		assert.Equal(t, config.DefaultDisplayRows, cfg.DisplayRows)
	})

	t.Run("dotenv", func(t *testing.T) {
		path := filepath.Join(dir, "rowframe.env")
		require.NoError(t, os.WriteFile(path, []byte(config.EnvDisplayRows+"=4\n"), 0o600))

		cfg, err := config.LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.DisplayRows)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "rowframe.toml")
		require.NoError(t, os.WriteFile(path, []byte(`display_rows = 1`), 0o600))

		_, err := config.LoadFromFile(path)
		require.EqualError(t, err, "unsupported config file format: .toml")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadFromFile(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yml")
		require.NoError(t, os.WriteFile(path, []byte("display_rows: [unterminated"), 0o600))

		_, err := config.LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing YAML configuration")
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(config.EnvDisplayRows, "25")
	t.Setenv(config.EnvJoinIndexLoadFactor, "0.6")
	t.Setenv(config.EnvVerboseLogging, "true")
	t.Setenv(config.EnvMetricsCollection, "not-a-bool")

	cfg := config.LoadFromEnv()

	assert.Equal(t, 25, cfg.DisplayRows)
	assert.InDelta(t, 0.6, cfg.JoinIndexLoadFactor, 0.001)
	assert.InDelta(t, config.DefaultJoinIndexCapacityFactor, cfg.JoinIndexCapacityFactor, 0.001)
	assert.True(t, cfg.VerboseLogging)
	assert.False(t, cfg.MetricsCollection)
}

func TestLoadFromDotEnv(t *testing.T) {
	t.Run("reads file variables", func(t *testing.T) {
		t.Setenv(config.EnvDisplayRows, "99")

		path := filepath.Join(t.TempDir(), ".env")
		content := "# rowframe settings\n" +
			config.EnvDisplayRows + "=7\n" +
			"export " + config.EnvMetricsCollection + "=true\n" +
			config.EnvJoinIndexCapacityFactor + "=\"2.5\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := config.LoadFromDotEnv(path)
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.DisplayRows)
		assert.True(t, cfg.MetricsCollection)
		assert.InDelta(t, 2.5, cfg.JoinIndexCapacityFactor, 0.001)
		assert.InDelta(t, config.DefaultJoinIndexLoadFactor, cfg.JoinIndexLoadFactor, 0.001)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadFromDotEnv(filepath.Join(t.TempDir(), "absent.env"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading env file")
	})
}

func TestGlobalConfig(t *testing.T) {
	t.Cleanup(config.ResetGlobalConfig)

	custom := config.NewConfig()
	custom.DisplayRows = 2
	config.SetGlobalConfig(custom)

	assert.Equal(t, 2, config.GetGlobalConfig().DisplayRows)

	config.ResetGlobalConfig()
	assert.Equal(t, config.DefaultDisplayRows, config.GetGlobalConfig().DisplayRows)
}

func TestLogger(t *testing.T) {
	quiet := config.NewConfig().Logger()
	require.NotNil(t, quiet)
	quiet.Debug("discarded")

	verbose := config.NewConfig()
	verbose.VerboseLogging = true
	assert.NotNil(t, verbose.Logger())
}
