// Package config provides configuration loading for drover.
// It supports a layered configuration approach with priority:
// CLI flags > environment variables (DROVER_*) > config file (~/.drover.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all drover configuration options.
type Config struct {
	ProwlerBin      string `mapstructure:"prowler_bin" yaml:"prowler_bin"`
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`
	OutputDir       string `mapstructure:"output_dir" yaml:"output_dir"`
	OutputFormat    string `mapstructure:"output_format" yaml:"output_format"`
	EnvCredentials  bool   `mapstructure:"env_credentials" yaml:"env_credentials"`
	StreamOutput    bool   `mapstructure:"stream_output" yaml:"stream_output"`
}

// Defaults returns a Config populated with default values. The credentials
// file default is left empty here; the credentials store resolves the empty
// string to ~/.aws/credentials so the home lookup happens once, in one place.
func Defaults() Config {
	return Config{
		ProwlerBin:   "prowler",
		OutputDir:    "output",
		OutputFormat: "table",
		StreamOutput: true,
	}
}

// Load reads configuration from ~/.drover.yaml and environment variables.
// It does NOT apply CLI flag overrides; call ApplyFlags for that.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".drover")
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("DROVER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)

	v.SetEnvPrefix("DROVER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ApplyFlags overrides config values with any CLI flags that were explicitly set.
func ApplyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("prowler-bin") {
		val, _ := flags.GetString("prowler-bin")
		cfg.ProwlerBin = val
	}
	if flags.Changed("credentials-file") {
		val, _ := flags.GetString("credentials-file")
		cfg.CredentialsFile = val
	}
	if flags.Changed("output-dir") {
		val, _ := flags.GetString("output-dir")
		cfg.OutputDir = val
	}
	if flags.Changed("output") {
		val, _ := flags.GetString("output")
		cfg.OutputFormat = val
	}
	if flags.Changed("env-credentials") {
		val, _ := flags.GetBool("env-credentials")
		cfg.EnvCredentials = val
	}
	if flags.Changed("quiet") {
		val, _ := flags.GetBool("quiet")
		cfg.StreamOutput = !val
	}
}

// ConfigFilePath returns the default config file path (~/.drover.yaml).
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".drover.yaml"
	}
	return filepath.Join(home, ".drover.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("prowler_bin", "prowler")
	v.SetDefault("output_dir", "output")
	v.SetDefault("output_format", "table")
	v.SetDefault("env_credentials", false)
	v.SetDefault("stream_output", true)
}
