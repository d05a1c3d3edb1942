package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/orgchart/pkg/extract"
	"github.com/matzehuels/orgchart/pkg/pipeline"
	"github.com/matzehuels/orgchart/pkg/render/styles"
)

// Config holds user defaults read from config.toml. Flags override it.
//
//	endpoint    = "http://127.0.0.1:5000"
//	width       = 1200
//	pixel_ratio = 2
//	theme       = "gradient"
//	output_dir  = "charts"
type Config struct {
	Endpoint   string  `toml:"endpoint"`
	Width      float64 `toml:"width"`
	PixelRatio float64 `toml:"pixel_ratio"`
	Theme      string  `toml:"theme"`
	OutputDir  string  `toml:"output_dir"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Endpoint:   extract.DefaultEndpoint,
		Width:      pipeline.DefaultWidth,
		PixelRatio: pipeline.DefaultPixelRatio,
		Theme:      pipeline.DefaultTheme,
	}
}

// configPath returns the default config file location.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// loadConfig reads path, or the default location when path is empty.
// A missing default file yields [DefaultConfig]; a missing explicit file is
// an error.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("invalid width: %v", c.Width)
	}
	if c.PixelRatio <= 0 {
		return fmt.Errorf("invalid pixel_ratio: %v", c.PixelRatio)
	}
	if _, err := styles.ByName(c.Theme); err != nil {
		return err
	}
	return nil
}

// outputPath places name in the configured output directory unless name
// already has a directory component.
func (c Config) outputPath(name string) string {
	if c.OutputDir == "" || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(c.OutputDir, name)
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
