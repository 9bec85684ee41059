package utils

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/realitybuilders/rbew_search/opener"
	"github.com/spf13/viper"
)

// Config is the cofiguration for the application
type Config struct {
	ContentRoot       string `mapstructure:"content_root"`       // Directory holding the site pages.
	Browser           string `mapstructure:"browser"`            // Command to open external links with
	BrowserForeground bool   `mapstructure:"browser_foreground"` // Run the browser in the terminal
	LogPath           string `mapstructure:"log_path"`           // Where the TUI writes its debug log
}

// ConfigDir is where the config file and debug log live by default.
func ConfigDir() string {
	homedir, _ := os.UserHomeDir()
	return path.Join(homedir, "/.config/rbew_search")
}

// DefaultConfigPath is the config file read when none is given.
func DefaultConfigPath() string {
	return path.Join(ConfigDir(), "config.yaml")
}

// NewConfig reads the config file at configPath, falling back to defaults
// when it doesn't exist. RBEW_* environment variables override both.
func NewConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetDefault("content_root", "content")
	v.SetDefault("browser", opener.DefaultCommand())
	v.SetDefault("browser_foreground", false)
	v.SetDefault("log_path", path.Join(ConfigDir(), "debug.log"))

	v.SetEnvPrefix("rbew")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to parse the config file: %w", err)
	}

	return config, nil
}
