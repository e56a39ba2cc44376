package configuration

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/modsagraphy/universa/internal/configuration/properties"
	"github.com/modsagraphy/universa/internal/configuration/util"
)

const defaultConfigDir = "internal/static"

func Load() (*properties.Config, error) {
	return LoadFrom(defaultConfigDir)
}

// LoadFrom reads application.yml, then overlays application-<profile>.yml
// when the base config names a profile.
func LoadFrom(dir string) (*properties.Config, error) {
	cfg, err := loadBaseConfig(dir)
	if err != nil {
		return nil, err
	}

	if cfg.Application.Profile != "" {
		if err := loadProfileConfig(dir, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func loadBaseConfig(dir string) (*properties.Config, error) {
	baseConfig, err := util.LoadAndExpandYaml(dir, "application")
	if err != nil {
		slog.Error("Error loading base config", "error", err.Error())
		return nil, err
	}

	cfg := properties.Config{}
	if err := yaml.Unmarshal([]byte(baseConfig), &cfg); err != nil {
		slog.Error("Error parsing base config", "error", err.Error())
		return nil, err
	}

	return &cfg, nil
}

func loadProfileConfig(dir string, cfg *properties.Config) error {
	profileConfig, err := util.LoadAndExpandYaml(dir, fmt.Sprintf("application-%s", cfg.Application.Profile))
	if err != nil {
		slog.Error("Error loading profile config", "error", err.Error())
		return err
	}

	if err := yaml.Unmarshal([]byte(profileConfig), cfg); err != nil {
		slog.Error("Error parsing profile config", "error", err.Error())
		return err
	}

	return nil
}
