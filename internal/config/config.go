package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the dlsweep configuration
type Config struct {
	// Target settings
	Root string `mapstructure:"root"` // downloads directory to maintain

	// Organizer settings
	AgeThresholdHours float64  `mapstructure:"age_threshold_hours"` // minimum age before an entry is moved
	IgnoreFiles       []string `mapstructure:"ignore_files"`        // exact filenames never moved
	RulesPath         string   `mapstructure:"rules_path"`          // YAML category rules, built-in table if empty
	DryRun            bool     `mapstructure:"dry_run"`             // plan moves without performing them

	// Recent settings
	RecentLimit int `mapstructure:"recent_limit"` // number of files listed by recent

	// Report settings
	ReportFormat string `mapstructure:"report_format"` // text, json, md; console if empty
	OutputFile   string `mapstructure:"output_file"`   // output file path
}

// Valid report formats
var reportFormats = []string{"text", "txt", "json", "md", "markdown"}

// MaxAgeThresholdHours is the largest threshold a time.Duration can hold
const MaxAgeThresholdHours = float64(math.MaxInt64 / int64(time.Hour))

// DefaultIgnoreFiles are OS metadata files the organizer never touches
var DefaultIgnoreFiles = []string{
	".DS_Store",
	".localized",
	"desktop.ini",
}

// LoadConfig loads configuration from defaults, an optional config file
// and environment variables
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("root", DefaultRoot())
	v.SetDefault("age_threshold_hours", 24)
	v.SetDefault("ignore_files", DefaultIgnoreFiles)
	v.SetDefault("rules_path", "")
	v.SetDefault("dry_run", false)
	v.SetDefault("recent_limit", 10)
	v.SetDefault("report_format", "")
	v.SetDefault("output_file", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	// Read environment variables
	v.SetEnvPrefix("DLSWEEP")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Root = ExpandHome(cfg.Root)
	cfg.RulesPath = ExpandHome(cfg.RulesPath)

	return &cfg, nil
}

// DefaultRoot returns the user's downloads directory
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Downloads"
	}
	return filepath.Join(home, "Downloads")
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// AgeThreshold returns the age threshold as a duration
func (c *Config) AgeThreshold() time.Duration {
	return time.Duration(c.AgeThresholdHours * float64(time.Hour))
}

// IsIgnored checks if a filename is on the ignore list
func (c *Config) IsIgnored(name string) bool {
	for _, ignored := range c.IgnoreFiles {
		if ignored == name {
			return true
		}
	}
	return false
}

// Validate checks configuration values
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root must not be empty")
	}
	if math.IsNaN(c.AgeThresholdHours) || c.AgeThresholdHours < 0 || c.AgeThresholdHours > MaxAgeThresholdHours {
		return fmt.Errorf("age threshold must be between 0 and %g hours (got: %g)", MaxAgeThresholdHours, c.AgeThresholdHours)
	}
	if c.RecentLimit <= 0 {
		return fmt.Errorf("recent limit must be a positive integer (got: %d)", c.RecentLimit)
	}
	if c.ReportFormat != "" && !contains(reportFormats, c.ReportFormat) {
		return fmt.Errorf("report format must be one of: %s (got: %s)", strings.Join(reportFormats, ", "), c.ReportFormat)
	}
	return nil
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
