// Package config loads engine settings from defaults, an optional TOML file and
// VI_ENGINE_* environment variables, in that order of precedence.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds runtime settings
type Config struct {
	FPS          int    `toml:"fps" config:"VI_ENGINE_FPS"`
	Width        int    `toml:"width" config:"VI_ENGINE_WIDTH"`
	Height       int    `toml:"height" config:"VI_ENGINE_HEIGHT"`
	MaxFrames    int    `toml:"max_frames" config:"VI_ENGINE_MAX_FRAMES"`
	Debug        bool   `toml:"debug" config:"VI_ENGINE_DEBUG"`
	PhysicsDebug bool   `toml:"physics_debug" config:"VI_ENGINE_PHYSICS_DEBUG"`
	LogLevel     string `toml:"log_level" config:"VI_ENGINE_LOG_LEVEL"`
	LogDir       string `toml:"log_dir" config:"VI_ENGINE_LOG_DIR"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		FPS:      30,
		Width:    80,
		Height:   24,
		LogLevel: "info",
		LogDir:   "logs",
	}
}

// Load applies the file at path (optional) and the environment over the defaults
func Load(path string) (Config, error) {
	c := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &c)
		if err != nil {
			return Config{}, eris.Wrapf(err, "decode config file %s", path)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, eris.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
		}
	}

	if err := jlconfig.FromEnv().To(&c); err != nil {
		return Config{}, eris.Wrap(err, "read config from environment")
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > 1000 {
		return eris.Errorf("fps %d out of range [1,1000]", c.FPS)
	}
	if c.Width < 1 || c.Height < 1 {
		return eris.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.MaxFrames < 0 {
		return eris.Errorf("max_frames %d is negative", c.MaxFrames)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// FrameDuration is the fixed tick interval
func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Level parses LogLevel
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}
