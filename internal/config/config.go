package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/salomonkoivisto/CSCE-679/internal/core"
)

type DatasetConfig struct {
	Path        string `json:"path"`
	WindowYears int    `json:"window_years"`
}

type UIConfig struct {
	ShowLegend bool `json:"show_legend"`
}

type Config struct {
	Dataset DatasetConfig `json:"dataset"`
	UI      UIConfig      `json:"ui"`
}

func DefaultConfig() Config {
	return Config{
		Dataset: DatasetConfig{
			Path:        "temperature_daily.csv",
			WindowYears: core.DefaultWindowYears,
		},
		UI: UIConfig{ShowLegend: true},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "tempmatrix")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tempmatrix")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Dataset.WindowYears <= 0 {
		cfg.Dataset.WindowYears = core.DefaultWindowYears
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = DefaultConfig().Dataset.Path
	}

	return cfg, nil
}

func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
