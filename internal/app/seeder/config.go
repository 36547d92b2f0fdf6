package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

// Config holds seeder settings. Empty lists fall back to the built-in
// defaults.
type Config struct {
	Departments       []string         `yaml:"departments"        env:"SEEDER_DEPARTMENTS"        env-separator:","`
	FinanceCategories []string         `yaml:"finance_categories" env:"SEEDER_FINANCE_CATEGORIES" env-separator:","`
	ItemCategories    []domain.SeedRow `yaml:"item_categories"`
	DryRun            bool             `yaml:"dry_run"            env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}
