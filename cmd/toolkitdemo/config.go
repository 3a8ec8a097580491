package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hubastard/grove-toolkit/engine/core"
	"github.com/hubastard/grove-toolkit/engine/ui"
)

// Config holds the demo settings.
type Config struct {
	Window WindowConfig
	UI     UIConfig
	Debug  DebugConfig
}

// WindowConfig holds window and redraw settings.
type WindowConfig struct {
	Title       string
	Width       int
	Height      int
	VSync       bool
	Continuous  bool
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
	Icon        string        // optional PNG
}

// UIConfig holds presentation settings.
type UIConfig struct {
	FontSize float32 `mapstructure:"font_size"`
	FontFile string  `mapstructure:"font_file"` // empty: embedded Go Regular
	Theme    string
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	Overlay         bool
	ProfilerSamples int `mapstructure:"profiler_samples"`
}

const envPrefix = "TOOLKITDEMO"

// LoadConfig reads configuration from file and env. Env var overrides use
// prefix TOOLKITDEMO_, e.g. TOOLKITDEMO_UI_THEME=light. It also returns the
// config file that was read, empty when none was found.
func LoadConfig() (Config, string, error) {
	v := viper.New()

	// default values
	v.SetDefault("window.title", "Grove UI Toolkit Demo")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.vsync", true)
	v.SetDefault("window.continuous", false)
	v.SetDefault("window.idle_timeout", "500ms")
	v.SetDefault("window.icon", "")
	v.SetDefault("ui.font_size", 18)
	v.SetDefault("ui.font_file", "")
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("debug.overlay", false)
	v.SetDefault("debug.profiler_samples", 1<<10)

	v.SetConfigType("toml")

	explicit := os.Getenv(envPrefix + "_CONFIG")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "grove-toolkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// the default location is optional, an explicit file is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, "", fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, "", err
	}
	return c, v.ConfigFileUsed(), nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.UI.FontSize < 8 || c.UI.FontSize > 72 {
		return fmt.Errorf("font size %g outside [8, 72]", c.UI.FontSize)
	}
	if _, err := ui.ParseTheme(c.UI.Theme); err != nil {
		return fmt.Errorf("ui.theme: %w", err)
	}
	return nil
}

// Theme returns the validated start-up theme.
func (c Config) Theme() ui.Theme {
	t, _ := ui.ParseTheme(c.UI.Theme)
	return t
}

// Core converts the window settings for core.Run.
func (c Config) Core() core.Config {
	return core.Config{
		Title:       c.Window.Title,
		Width:       c.Window.Width,
		Height:      c.Window.Height,
		VSync:       c.Window.VSync,
		ClearColor:  c.Theme().Visuals().Background,
		Continuous:  c.Window.Continuous,
		IdleTimeout: c.Window.IdleTimeout,
	}
}
