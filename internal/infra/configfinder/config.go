package configfinder

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// LoadConfig loads unitconv.yaml from root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, FileName))
}

// LoadFile loads an explicit config file and applies defaults.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Unitconv.Defaults.Category != "" {
		c, err := domain.ParseCategory(y.Unitconv.Defaults.Category)
		if err != nil {
			return cfg, invalidField(path, "unitconv.defaults.category", err)
		}
		cfg.Defaults.Category = c
	}
	if y.Unitconv.Defaults.Format != "" {
		switch y.Unitconv.Defaults.Format {
		case "pretty", "json", "plain":
			cfg.Defaults.Format = y.Unitconv.Defaults.Format
		default:
			return cfg, invalidField(path, "unitconv.defaults.format",
				fmt.Errorf("unsupported format %q (expected pretty|json|plain)", y.Unitconv.Defaults.Format))
		}
	}
	if y.Unitconv.Conversion.UnknownUnits != nil {
		p, err := domain.ParsePolicy(*y.Unitconv.Conversion.UnknownUnits)
		if err != nil {
			return cfg, invalidField(path, "unitconv.conversion.unknown_units", err)
		}
		cfg.Conversion.UnknownUnits = p
	}
	if y.Unitconv.Paths.BatchesDir != "" {
		cfg.Paths.BatchesDir = y.Unitconv.Paths.BatchesDir
	}

	return cfg, nil
}

func invalidField(path, field string, err error) error {
	return &domain.OpError{
		Op:   "configfinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %v: %w", field, err, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Unitconv struct {
		Defaults struct {
			Category string `yaml:"category"`
			Format   string `yaml:"format"`
		} `yaml:"defaults"`

		Conversion struct {
			UnknownUnits *string `yaml:"unknown_units"`
		} `yaml:"conversion"`

		Paths struct {
			BatchesDir string `yaml:"batches_dir"`
		} `yaml:"paths"`
	} `yaml:"unitconv"`
}
