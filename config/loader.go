package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the tuning values the generation tools were calibrated with.
func Default() AppConfig {
	return AppConfig{
		PTLines: PTLinesConfig{
			End:         86400,
			Period:      600,
			Seed:        42,
			VTypePrefix: "pt_",
		},
		Rerouters: RerouterConfig{
			MaxAlternatives:         10,
			MaxDistanceAlternatives: 1000.0,
			MinCapacityVisibility:   50,
			MaxDistanceVisibility:   1000.0,
		},
		Population: PopulationConfig{
			Density: 3000.0,
		},
		Tools: ToolsConfig{
			Python: "python3",
		},
	}
}

// LoadAppConfig loads and validates the scenario tuning configuration.
// A missing file is not an error: the file tunes the defaults, it does not
// enable anything, so the defaults apply unchanged.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Tools.Python == "" {
		cfg.Tools.Python = "python3"
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
