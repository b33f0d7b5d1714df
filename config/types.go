package config

// PTLinesConfig tunes the public-transport flow generation
type PTLinesConfig struct {
	End         int    `yaml:"end" validate:"gt=0"`
	Period      int    `yaml:"period" validate:"gt=0"`
	Seed        int    `yaml:"seed" validate:"gte=0"`
	VTypePrefix string `yaml:"vtypePrefix"`
}

// RerouterConfig tunes the parking rerouter generation
type RerouterConfig struct {
	MaxAlternatives         int     `yaml:"maxAlternatives" validate:"gt=0"`
	MaxDistanceAlternatives float64 `yaml:"maxDistanceAlternatives" validate:"gt=0"`
	MinCapacityVisibility   int     `yaml:"minCapacityVisibility" validate:"gte=0"`
	MaxDistanceVisibility   float64 `yaml:"maxDistanceVisibility" validate:"gt=0"`
}

// PopulationConfig tunes the origin-destination matrix synthesis
type PopulationConfig struct {
	Density float64 `yaml:"density" validate:"gt=0"`
}

// ToolsConfig locates the external generation tools.
//
// ActivityGenDir is the directory holding the activity-based mobility
// generator and its companion extractors; when empty it is derived from the
// simulation toolkit installation root.
type ToolsConfig struct {
	Python         string `yaml:"python" validate:"required"`
	ActivityGenDir string `yaml:"activityGenDir"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	PTLines    PTLinesConfig    `yaml:"ptlines"`
	Rerouters  RerouterConfig   `yaml:"rerouters"`
	Population PopulationConfig `yaml:"population"`
	Tools      ToolsConfig      `yaml:"tools"`
}
