package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// maxICOSize is the largest image an ICO directory entry can describe.
const maxICOSize = 256

type Config struct {
	Port           int        `envconfig:"PORT" default:"8080"`
	DatabaseURL    string     `envconfig:"DATABASE_URL"`
	AllowedOrigins string     `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	PreviewSVGSize int        `envconfig:"PREVIEW_SVG_SIZE" default:"384"`
	ICOSizes       []int      `envconfig:"ICO_SIZES" default:"16,32,48,64,128,256"`
	TouchIconSize  int        `envconfig:"TOUCH_ICON_SIZE" default:"180"`
	ThumbnailSize  int        `envconfig:"THUMBNAIL_SIZE" default:"48"`
	ThumbnailCache int        `envconfig:"THUMBNAIL_CACHE" default:"256"`
	LogLevel       slog.Level `envconfig:"LOG_LEVEL" default:"INFO"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if len(cfg.ICOSizes) == 0 {
		return nil, fmt.Errorf("ICO_SIZES must list at least one size")
	}
	for _, size := range cfg.ICOSizes {
		if size < 1 || size > maxICOSize {
			return nil, fmt.Errorf("ICO_SIZES: %d is outside 1-%d", size, maxICOSize)
		}
	}
	if cfg.PreviewSVGSize < 1 {
		return nil, fmt.Errorf("PREVIEW_SVG_SIZE must be positive, got %d", cfg.PreviewSVGSize)
	}
	return &cfg, nil
}

// Origins returns the allowed browser origins.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// OriginHosts returns the allowed origins as host[:port] patterns, the
// form the WebSocket origin check expects.
func (c *Config) OriginHosts() []string {
	var out []string
	for _, o := range c.Origins() {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			out = append(out, u.Host)
		} else {
			out = append(out, o)
		}
	}
	return out
}
