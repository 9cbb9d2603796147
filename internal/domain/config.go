package domain

// Config represents the unitconv configuration loaded from unitconv.yaml.
type Config struct {
	Defaults   DefaultsConfig
	Conversion ConversionConfig
	Paths      PathsConfig
}

type DefaultsConfig struct {
	Category Category
	Format   string
}

type ConversionConfig struct {
	UnknownUnits Policy
}

type PathsConfig struct {
	BatchesDir string
}

// DefaultConfig provides sane defaults if unitconv.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Category: CategoryLength,
			Format:   "pretty",
		},
		Conversion: ConversionConfig{UnknownUnits: PolicyStrict},
		Paths:      PathsConfig{BatchesDir: "batches"},
	}
}

// InitSpec describes where a starter configuration should be written.
type InitSpec struct {
	Root string
}
