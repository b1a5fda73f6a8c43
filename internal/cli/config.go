package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperrors "github.com/gridatlas/gridatlas/pkg/errors"
	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

// Config holds the optional TOML configuration. Flags always win over
// config values; config values win over the built-in defaults.
//
// Example .gridatlas.toml:
//
//	[embed]
//	position_cap = 3
//
//	[render]
//	formats = ["svg", "grid-svg"]
//	numbers = true
//
//	[serve]
//	addr = ":8460"
type Config struct {
	Embed  EmbedConfig  `toml:"embed"`
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// EmbedConfig tunes the embedding stage.
type EmbedConfig struct {
	// PositionCap bounds the cells tracked per country in the general
	// placer. Zero keeps gridmap.DefaultPositionCap.
	PositionCap int `toml:"position_cap"`
}

// RenderConfig sets render command defaults.
type RenderConfig struct {
	Formats []string `toml:"formats"`
	Numbers bool     `toml:"numbers"`
}

// ServeConfig sets serve command defaults.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Embed:  EmbedConfig{PositionCap: gridmap.DefaultPositionCap},
		Render: RenderConfig{Formats: []string{"svg"}},
		Serve:  ServeConfig{Addr: ":8460"},
	}
}

// loadConfig reads the configuration from path, or from the default
// locations when path is empty: ./.gridatlas.toml, then
// $XDG_CONFIG_HOME/gridatlas/config.toml (falling back to ~/.config).
// A missing default file is not an error; a missing explicit path is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if os.IsNotExist(err) {
				return cfg, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "config %s", path)
		}
		return cfg, nil
	}

	for _, candidate := range defaultConfigPaths() {
		_, err := toml.DecodeFile(candidate, &cfg)
		if err == nil {
			return cfg, nil
		}
		if !os.IsNotExist(err) {
			return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "config %s", candidate)
		}
	}
	return cfg, nil
}

// defaultConfigPaths returns the config search order.
func defaultConfigPaths() []string {
	paths := []string{"." + appName + ".toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, appName, "config.toml"))
	}
	return paths
}
