package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/vorbis-tagger/internal/constants"
)

// TestConfigStruct tests the Config struct fields.
func TestConfigStruct(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		RatingUserEmail:   "user@example.com",
		RatingSteps:       6,
		ClearExistingTags: true,
		RemoveID3FromFLAC: false,
		CoverCacheSize:    32,
		LogLevel:          "info",
	}

	assert.Equal(t, "user@example.com", cfg.RatingUserEmail)
	assert.Equal(t, 6, cfg.RatingSteps)
	assert.True(t, cfg.ClearExistingTags)
	assert.False(t, cfg.RemoveID3FromFLAC)
	assert.Equal(t, 32, cfg.CoverCacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

// TestConstants tests the constants.
func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, DefaultRatingSteps)
	assert.Equal(t, 32, DefaultCoverCacheSize)
	assert.Equal(t, 2, minRatingSteps)
}

// TestLoadConfig tests the LoadConfig function.
//
//nolint:tparallel // It's a test function and it's not parallel to avoid race conditions.
func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		configFilename string
		configContent  string
		expectError    bool
		expectedError  string
	}{
		{
			name:           "valid config file",
			configFilename: "valid_config.yaml",
			configContent: `
rating_user_email: "user@example.com"
rating_steps: 6
clear_existing_tags: false
remove_id3_from_flac: true
cover_cache_size: 16
log_level: "info"
`,
			expectError: false,
		},
		{
			name:           "non-existent file",
			configFilename: "non_existent.yaml",
			expectError:    true,
			expectedError:  "failed to read config from file",
		},
		{
			name:           "invalid yaml",
			configFilename: "invalid.yaml",
			configContent: `
invalid: yaml: content: [unclosed
`,
			expectError:   true,
			expectedError: "failed to read config from file",
		},
		{
			name:           "empty filename uses default",
			configFilename: "",
			expectError:    true,
			expectedError:  "failed to read config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory for this test.
			var (
				tempDir    = t.TempDir()
				configPath string
			)

			switch {
			case tt.configContent != "":
				configPath = filepath.Join(tempDir, tt.configFilename)
				err := os.WriteFile(configPath, []byte(tt.configContent), constants.DefaultFilePermissions)

				require.NoError(t, err)
			case tt.configFilename != "":
				configPath = filepath.Join(tempDir, tt.configFilename)
			default:
				// For empty filename test, use a non-existent file path.
				configPath = filepath.Join(tempDir, "non_existent.yaml")
			}

			cfg, err := LoadConfig(configPath)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				assert.Equal(t, "user@example.com", cfg.RatingUserEmail)
				assert.Equal(t, 6, cfg.RatingSteps)
				assert.Equal(t, 16, cfg.CoverCacheSize)
				assert.True(t, cfg.RemoveID3FromFLAC)
			}
		})
	}
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      *Config
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid config",
			config: &Config{
				RatingUserEmail: "user@example.com",
				RatingSteps:     6,
				CoverCacheSize:  32,
				LogLevel:        "info",
			},
			expectError: false,
		},
		{
			name: "empty email is allowed",
			config: &Config{
				RatingSteps:    6,
				CoverCacheSize: 32,
				LogLevel:       "info",
			},
			expectError: false,
		},
		{
			name: "zero rating steps falls back to default",
			config: &Config{
				RatingSteps:    0,
				CoverCacheSize: 32,
				LogLevel:       "info",
			},
			expectError: false,
		},
		{
			name: "rating steps too low",
			config: &Config{
				RatingSteps:    1,
				CoverCacheSize: 32,
				LogLevel:       "info",
			},
			expectError: true,
			errorMsg:    "invalid rating_steps: must be at least",
		},
		{
			name: "negative cover cache size",
			config: &Config{
				RatingSteps:    6,
				CoverCacheSize: -1,
				LogLevel:       "info",
			},
			expectError: true,
			errorMsg:    "cover_cache_size must be a positive integer",
		},
		{
			name: "invalid log level",
			config: &Config{
				RatingSteps:    6,
				CoverCacheSize: 32,
				LogLevel:       "invalid",
			},
			expectError: true,
			errorMsg:    "unknown log level:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tt.config)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				// Check that parsed and defaulted values are set correctly.
				assert.Equal(t, zapcore.InfoLevel, tt.config.ParsedLogLevel)
				assert.GreaterOrEqual(t, tt.config.RatingSteps, minRatingSteps)
				assert.Positive(t, tt.config.CoverCacheSize)
			}
		})
	}
}

// TestValidateConfig_TrimsEmail verifies whitespace around the email is stripped.
func TestValidateConfig_TrimsEmail(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		RatingUserEmail: "  user@example.com  ",
		RatingSteps:     6,
		CoverCacheSize:  32,
		LogLevel:        "debug",
	}

	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, "user@example.com", cfg.RatingUserEmail)
	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
}
