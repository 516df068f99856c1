package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/vorbis-tagger/internal/constants"
	"github.com/oshokin/vorbis-tagger/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// RatingUserEmail scopes rating tags to one user.
	// Ratings stored for other users are ignored on load.
	RatingUserEmail string `mapstructure:"rating_user_email"`
	// RatingSteps is the number of steps in the internal rating scale.
	RatingSteps int `mapstructure:"rating_steps"`
	// ClearExistingTags indicates whether saving drops tags not present in
	// the new metadata instead of merging into the existing dictionary.
	ClearExistingTags bool `mapstructure:"clear_existing_tags"`
	// RemoveID3FromFLAC indicates whether saving strips foreign ID3 tag
	// blocks from FLAC files.
	RemoveID3FromFLAC bool `mapstructure:"remove_id3_from_flac"`
	// CoverCacheSize is the number of decoded cover art payloads kept in
	// memory during batch runs.
	CoverCacheSize int `mapstructure:"cover_cache_size"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".vorbis-tagger.yaml"

	// DefaultRatingSteps is the rating scale used when none is configured.
	DefaultRatingSteps = 6

	// DefaultCoverCacheSize is the default cover art cache capacity.
	DefaultCoverCacheSize = 32

	// minRatingSteps is the smallest usable rating scale.
	minRatingSteps = 2
)

// Static error definitions for better error handling.
var (
	// ErrInvalidRatingSteps indicates that the rating scale is unusable.
	ErrInvalidRatingSteps = errors.New("invalid rating_steps")
	// ErrInvalidCoverCacheSize indicates that the cache capacity is invalid.
	ErrInvalidCoverCacheSize = errors.New("cover_cache_size must be a positive integer")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	viper.SetDefault("rating_steps", DefaultRatingSteps)
	viper.SetDefault("cover_cache_size", DefaultCoverCacheSize)
	viper.SetDefault("log_level", "info")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	cfg.RatingUserEmail = strings.TrimSpace(cfg.RatingUserEmail)

	if cfg.RatingSteps == 0 {
		cfg.RatingSteps = DefaultRatingSteps
	}

	if cfg.RatingSteps < minRatingSteps {
		return fmt.Errorf("%w: must be at least %d", ErrInvalidRatingSteps, minRatingSteps)
	}

	if cfg.CoverCacheSize == 0 {
		cfg.CoverCacheSize = DefaultCoverCacheSize
	}

	if cfg.CoverCacheSize < 0 {
		return ErrInvalidCoverCacheSize
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.RatingUserEmail, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the rating_user_email value in the node tree.
	updateRatingEmailInNode(&node, cfg.RatingUserEmail)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, ratingUserEmail string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("rating_user_email", ratingUserEmail)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateRatingEmailInNode updates the rating_user_email value in the YAML node tree.
func updateRatingEmailInNode(node *yaml.Node, ratingUserEmail string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "rating_user_email" {
			// Update the value while preserving style.
			valueNode.Value = ratingUserEmail

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			break
		}
	}
}
