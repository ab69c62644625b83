// Package config reads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           string `env:"PORT" envDefault:"8080"`
	DatabasePath   string `env:"PORTFOLIO_DB" envDefault:"portfolio.db"`
	ContentFile    string `env:"PORTFOLIO_CONTENT"`
	StaticDir      string `env:"PORTFOLIO_STATIC" envDefault:"./static"`
	VideosDir      string `env:"PORTFOLIO_VIDEOS" envDefault:"./videos"`
	EditorUsername string `env:"EDITOR_USERNAME" envDefault:"admin"`
	// EditorPassword left empty opens editing to every visitor.
	EditorPassword string `env:"EDITOR_PASSWORD"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"67108864"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// EditingLocked reports whether mutations require an editor login.
func (c Config) EditingLocked() bool {
	return c.EditorPassword != ""
}
