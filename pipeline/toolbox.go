package pipeline

import (
	"path/filepath"

	"github.com/theoremus-urban-solutions/osm-to-scenario/config"
	"github.com/theoremus-urban-solutions/osm-to-scenario/tools"
)

// Toolbox binds every stage to the tool it delegates to. Tests and embedders
// substitute their own runners; production uses DefaultToolbox.
type Toolbox struct {
	NetConvert          tools.Runner
	PTLinesToFlows      tools.Runner
	ParkingAreas        tools.Runner
	ParkingRerouters    tools.Runner
	PolyConvert         tools.Runner
	TAZBuildings        tools.Runner
	ODMatrix            tools.Runner
	ActivityGenDefaults tools.Runner
	ActivityGen         tools.Runner
	Simulator           tools.Runner
}

// DefaultToolbox wires the standard toolchain from the simulation toolkit
// installation root. The converters and the simulator itself are standalone
// executables; the generators are entry-point tools bound through their
// shipped scripts.
func DefaultToolbox(home string, cfg config.AppConfig) Toolbox {
	toolsDir := filepath.Join(home, "tools")
	agDir := cfg.Tools.ActivityGenDir
	if agDir == "" {
		agDir = filepath.Join(toolsDir, "contributed", "saga")
	}
	py := cfg.Tools.Python
	entry := func(name, dir string) tools.Runner {
		return tools.Entry{Tool: name, Fn: tools.Script(py, filepath.Join(dir, name+".py"))}
	}
	return Toolbox{
		NetConvert:          tools.Command{Exe: "netconvert", Home: home},
		PTLinesToFlows:      entry("ptlines2flows", toolsDir),
		ParkingAreas:        entry("generateParkingAreasFromOSM", agDir),
		ParkingRerouters:    entry("generateParkingAreaRerouters", toolsDir),
		PolyConvert:         tools.Command{Exe: "polyconvert", Home: home},
		TAZBuildings:        entry("generateTAZBuildingsFromOSM", agDir),
		ODMatrix:            entry("generateAmitranFromTAZWeights", agDir),
		ActivityGenDefaults: entry("generateDefaultsActivityGen", agDir),
		ActivityGen:         entry("activitygen", agDir),
		Simulator:           tools.Command{Exe: "sumo", Home: home},
	}
}
