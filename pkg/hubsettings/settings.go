// Package hubsettings resolves the viewer configuration from defaults,
// an optional config file, a .env file and FILEHUB_* environment variables.
package hubsettings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/filetug/filehub/pkg/catalogapi"
	"github.com/filetug/filehub/pkg/fsutils"
)

const UserDir = "~/.filehub"

const envPrefix = "FILEHUB"

const (
	keyAPIURL      = "api_url"
	keyLogLevel    = "log_level"
	keyLogFile     = "log_file"
	keyDownloadDir = "download_dir"
	keyHTTPTimeout = "http_timeout"
)

var osUserHomeDir = os.UserHomeDir

// GetUserDir returns the absolute per-user settings directory.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

type Settings struct {
	APIURL      string
	LogLevel    string
	LogFile     string
	DownloadDir string
	HTTPTimeout time.Duration
}

var loadDotEnv = func() error {
	return godotenv.Load()
}

// Load reads the settings. A missing .env or config file is not an error.
// Environment variables win over the config file, which wins over defaults.
func Load() (Settings, error) {
	userDir, err := GetUserDir()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to resolve user dir: %w", err)
	}
	return load(userDir)
}

func load(configDir string) (Settings, error) {
	if err := loadDotEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	s := Settings{
		APIURL:      v.GetString(keyAPIURL),
		LogLevel:    v.GetString(keyLogLevel),
		LogFile:     fsutils.ExpandHome(v.GetString(keyLogFile)),
		DownloadDir: fsutils.ExpandHome(v.GetString(keyDownloadDir)),
		HTTPTimeout: v.GetDuration(keyHTTPTimeout),
	}
	if _, err := catalogapi.ParseBaseURL(s.APIURL); err != nil {
		return Settings{}, err
	}
	if s.HTTPTimeout < 0 {
		return Settings{}, fmt.Errorf("invalid %s_HTTP_TIMEOUT: %v", envPrefix, s.HTTPTimeout)
	}
	return s, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault(keyAPIURL, catalogapi.DefaultBaseURL)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFile, filepath.Join(configDir, "filehub.log"))
	v.SetDefault(keyDownloadDir, ".")
	v.SetDefault(keyHTTPTimeout, 30*time.Second)
}
