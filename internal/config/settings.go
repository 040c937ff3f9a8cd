package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalidSetting = errors.New("invalid setting")

// Settings is the user-tunable configuration, read from file and environment.
type Settings struct {
	StandMinutes  int     `mapstructure:"stand-minutes"`
	SitMinutes    int     `mapstructure:"sit-minutes"`
	Notifications bool    `mapstructure:"notifications"`
	Sound         bool    `mapstructure:"sound"`
	Volume        float64 `mapstructure:"volume"`
	Theme         string  `mapstructure:"theme"`
	History       bool    `mapstructure:"history"`
	LogFile       string  `mapstructure:"log-file"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		StandMinutes:  DefaultStandMinutes,
		SitMinutes:    DefaultSitMinutes,
		Notifications: true,
		Sound:         true,
		Volume:        DefaultVolume,
		Theme:         "default",
		History:       true,
	}
}

// Load reads settings from configPath (or configDir/config.yml when empty)
// and STANDUP_* environment variables. Only the default file may be missing.
func Load(configPath, configDir string) (Settings, error) {
	var s Settings
	def := DefaultSettings()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("stand-minutes", def.StandMinutes)
	v.SetDefault("sit-minutes", def.SitMinutes)
	v.SetDefault("notifications", def.Notifications)
	v.SetDefault("sound", def.Sound)
	v.SetDefault("volume", def.Volume)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("history", def.History)
	v.SetDefault("log-file", filepath.Join(configDir, LogFileName))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, ConfigFileName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || os.IsNotExist(err)
		if !missing || configPath != "" {
			return s, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate enforces the input boundary: phases last at least one minute.
func (s Settings) Validate() error {
	if err := ValidateMinutes("stand-minutes", s.StandMinutes); err != nil {
		return err
	}
	if err := ValidateMinutes("sit-minutes", s.SitMinutes); err != nil {
		return err
	}
	if s.Volume < MinVolume || s.Volume > MaxVolume {
		return fmt.Errorf("%w: volume %.1f outside [%.1f, %.1f]", ErrInvalidSetting, s.Volume, MinVolume, MaxVolume)
	}
	return nil
}

// ValidateMinutes checks a single phase duration.
func ValidateMinutes(name string, minutes int) error {
	if minutes < MinPhaseMinutes || minutes > MaxPhaseMinutes {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidSetting, name, MinPhaseMinutes, MaxPhaseMinutes, minutes)
	}
	return nil
}
