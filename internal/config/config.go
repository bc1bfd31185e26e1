// Package config persists the user's preferred lookup parameters between
// invocations, mirroring the flags of the find command. Values used on the
// command line are written back so the next run repeats them by default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the persisted lookup parameters.
type Config struct {
	CalendarID  string `mapstructure:"calendar_id"`
	HomeTZ      string `mapstructure:"home_tz"`
	AttendeeTZ  string `mapstructure:"attendee_tz"`
	Days        int    `mapstructure:"days"`
	SlotMinutes int    `mapstructure:"slot_min"`
	Output      string `mapstructure:"output"`
	TimeFormat  string `mapstructure:"time_format"`
}

// Default returns the stock configuration used when no file exists.
func Default() Config {
	return Config{
		CalendarID:  "primary",
		HomeTZ:      "America/Denver",
		AttendeeTZ:  "America/New_York",
		Days:        7,
		SlotMinutes: 0,
		Output:      "text",
		TimeFormat:  "auto",
	}
}

// DefaultDir returns the directory holding the config file.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "freeslots")
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	defaults := Default()
	v.SetDefault("calendar_id", defaults.CalendarID)
	v.SetDefault("home_tz", defaults.HomeTZ)
	v.SetDefault("attendee_tz", defaults.AttendeeTZ)
	v.SetDefault("days", defaults.Days)
	v.SetDefault("slot_min", defaults.SlotMinutes)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("time_format", defaults.TimeFormat)
	return v
}

// Load reads the config file from dir, falling back to defaults for missing
// keys or a missing file. A corrupt file is treated as absent rather than
// failing the run.
func Load(dir string) Config {
	v := newViper(dir)
	if err := v.ReadInConfig(); err != nil {
		return Default()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the configuration to dir, creating it as needed.
func Save(dir string, cfg Config) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(dir)
	v.Set("calendar_id", cfg.CalendarID)
	v.Set("home_tz", cfg.HomeTZ)
	v.Set("attendee_tz", cfg.AttendeeTZ)
	v.Set("days", cfg.Days)
	v.Set("slot_min", cfg.SlotMinutes)
	v.Set("output", cfg.Output)
	v.Set("time_format", cfg.TimeFormat)

	if err := v.WriteConfigAs(filepath.Join(dir, "config.json")); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
