package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/osm-to-scenario/artifacts"
	"github.com/theoremus-urban-solutions/osm-to-scenario/config"
	"github.com/theoremus-urban-solutions/osm-to-scenario/tools"
	"github.com/theoremus-urban-solutions/osm-to-scenario/workspace"
)

// StageError identifies which stage of a run failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("stage %q: %v", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

// Stage is one ordered step of the generation pipeline. Inputs are checked
// before the stage runs, Outputs after it returns; either check failing stops
// the whole run.
type Stage struct {
	Name    string
	Inputs  []string
	Outputs []string
	Run     func(ctx context.Context) error
}

// Pipeline generates a complete simulation scenario inside one workspace.
// Instances are single-use per run and not safe for concurrent use.
type Pipeline struct {
	ID       string
	WS       *workspace.Workspace
	Cfg      config.AppConfig
	Box      Toolbox
	OSM      string // local name of the map extract inside the workspace
	LeftHand bool
	Profile  *Profile
}

// New returns a pipeline for one generation run.
func New(ws *workspace.Workspace, cfg config.AppConfig, box Toolbox, osmName string, leftHand bool) *Pipeline {
	return &Pipeline{
		ID:       uuid.NewString(),
		WS:       ws,
		Cfg:      cfg,
		Box:      box,
		OSM:      osmName,
		LeftHand: leftHand,
		Profile:  NewProfile(false),
	}
}

// Run executes the ten generation stages in order and assembles the final
// configuration. The first failure aborts the run with the stage's name; the
// partially populated workspace is left in place for inspection.
func (p *Pipeline) Run(ctx context.Context) error {
	stages := p.Stages()
	log.Printf("run %s: generating scenario from %s", p.ID, p.OSM)
	for i, stage := range stages {
		log.Printf("stage %d/%d: %s", i+1, len(stages), stage.Name)
		if err := p.WS.Require(stage.Inputs...); err != nil {
			return &StageError{Stage: stage.Name, Err: err}
		}
		start := time.Now()
		if err := stage.Run(ctx); err != nil {
			return &StageError{Stage: stage.Name, Err: err}
		}
		p.Profile.Record(stage.Name, time.Since(start))
		if err := p.WS.Require(stage.Outputs...); err != nil {
			return &StageError{Stage: stage.Name, Err: fmt.Errorf("expected output missing: %w", err)}
		}
	}
	return p.assemble()
}

// assemble points the scenario configuration at the generated route files.
func (p *Pipeline) assemble() error {
	routes, err := p.WS.RouteFiles()
	if err != nil {
		return &StageError{Stage: "configuration assembly", Err: err}
	}
	if len(routes) == 0 {
		return &StageError{Stage: "mobility generation", Err: errors.New("no route files produced")}
	}
	log.Printf("assembling %s with route files %v", workspace.SumoConfig, routes)
	if err := artifacts.SetRouteFiles(p.WS.Path(workspace.SumoConfig), routes); err != nil {
		return &StageError{Stage: "configuration assembly", Err: err}
	}
	return nil
}

// Simulate launches the simulator against the assembled configuration.
func (p *Pipeline) Simulate(ctx context.Context) error {
	if err := p.WS.Require(workspace.SumoConfig); err != nil {
		return &StageError{Stage: "simulation", Err: err}
	}
	inv := tools.Invocation{Dir: p.WS.Dir, Args: []string{"-c", workspace.SumoConfig}}
	start := time.Now()
	if err := p.Box.Simulator.Run(ctx, inv); err != nil {
		return &StageError{Stage: "simulation", Err: err}
	}
	p.Profile.Record("simulation", time.Since(start))
	return nil
}

// Stages returns the ordered stage sequence for this run.
func (p *Pipeline) Stages() []Stage {
	ws := p.WS
	inv := func(args []string) tools.Invocation {
		return tools.Invocation{Dir: ws.Dir, Args: args}
	}
	return []Stage{
		{
			Name:    "network conversion",
			Inputs:  []string{p.OSM, workspace.NetConvertConfig},
			Outputs: []string{workspace.Network, workspace.PTStops, workspace.PTLines, workspace.SideParking},
			Run: func(ctx context.Context) error {
				return p.Box.NetConvert.Run(ctx, inv(p.netconvertArgs()))
			},
		},
		{
			Name:    "public transport flows",
			Inputs:  []string{workspace.Network, workspace.PTStops, workspace.PTLines},
			Outputs: []string{workspace.PTFlows},
			Run: func(ctx context.Context) error {
				return p.Box.PTLinesToFlows.Run(ctx, inv(p.ptFlowsArgs()))
			},
		},
		{
			Name:    "parking areas",
			Inputs:  []string{p.OSM, workspace.Network},
			Outputs: []string{workspace.ParkingAreas},
			Run: func(ctx context.Context) error {
				return p.Box.ParkingAreas.Run(ctx, inv(p.parkingAreasArgs()))
			},
		},
		{
			// The only stage the pipeline implements itself: the side
			// parking found by the network converter and the parking areas
			// found by the dedicated locator become one superset document.
			Name:    "parking merge",
			Inputs:  []string{workspace.SideParking, workspace.ParkingAreas},
			Outputs: []string{workspace.MergedParking},
			Run: func(context.Context) error {
				return artifacts.MergeParking(
					ws.Path(workspace.SideParking),
					ws.Path(workspace.ParkingAreas),
					ws.Path(workspace.MergedParking))
			},
		},
		{
			Name:    "parking rerouters",
			Inputs:  []string{workspace.MergedParking, workspace.Network},
			Outputs: []string{workspace.ParkingRerouters},
			Run: func(ctx context.Context) error {
				return p.Box.ParkingRerouters.Run(ctx, inv(p.rerouterArgs()))
			},
		},
		{
			Name:    "polygon conversion",
			Inputs:  []string{p.OSM, workspace.Network},
			Outputs: []string{workspace.Polygons},
			Run: func(ctx context.Context) error {
				return p.Box.PolyConvert.Run(ctx, inv(p.polyconvertArgs()))
			},
		},
		{
			Name:    "taz and buildings",
			Inputs:  []string{p.OSM, workspace.Network},
			Outputs: []string{workspace.TAZ, workspace.ODWeights},
			Run: func(ctx context.Context) error {
				return p.Box.TAZBuildings.Run(ctx, inv(p.tazBuildingsArgs()))
			},
		},
		{
			Name:    "od matrix",
			Inputs:  []string{workspace.ODWeights},
			Outputs: []string{workspace.ODMatrix},
			Run: func(ctx context.Context) error {
				return p.Box.ODMatrix.Run(ctx, inv(p.odMatrixArgs()))
			},
		},
		{
			Name:    "activitygen defaults",
			Inputs:  []string{workspace.ActivityGenConfig, workspace.ODMatrix},
			Outputs: []string{workspace.ScenarioActivityGen},
			Run: func(ctx context.Context) error {
				return p.Box.ActivityGenDefaults.Run(ctx, inv(p.agDefaultsArgs()))
			},
		},
		{
			// Route files are discovered afterwards by suffix, not declared
			// here: the generator decides how many it emits.
			Name:   "mobility generation",
			Inputs: []string{workspace.ScenarioActivityGen},
			Run: func(ctx context.Context) error {
				return p.Box.ActivityGen.Run(ctx, inv(p.activityGenArgs()))
			},
		},
	}
}

// netconvertArgs builds the network conversion vector. The converter runs
// against the workspace, so outputs stay relative; --lefthand appears only
// for left-hand traffic scenarios.
func (p *Pipeline) netconvertArgs() []string {
	args := []string{
		"-c", workspace.NetConvertConfig,
		"--osm", p.OSM,
		"-o", workspace.Network,
		"--ptstop-output", workspace.PTStops,
		"--ptline-output", workspace.PTLines,
		"--parking-output", workspace.SideParking,
	}
	if p.LeftHand {
		args = append(args, "--lefthand")
	}
	return args
}

func (p *Pipeline) ptFlowsArgs() []string {
	return []string{
		"-n", p.WS.Path(workspace.Network),
		"-e", strconv.Itoa(p.Cfg.PTLines.End),
		"-p", strconv.Itoa(p.Cfg.PTLines.Period),
		"--random-begin",
		"--seed", strconv.Itoa(p.Cfg.PTLines.Seed),
		"--ptstops", p.WS.Path(workspace.PTStops),
		"--ptlines", p.WS.Path(workspace.PTLines),
		"-o", p.WS.Path(workspace.PTFlows),
		"--ignore-errors",
		"--vtype-prefix", p.Cfg.PTLines.VTypePrefix,
		"--verbose",
	}
}

func (p *Pipeline) parkingAreasArgs() []string {
	return []string{
		"--osm", p.WS.Path(p.OSM),
		"--net", p.WS.Path(workspace.Network),
		"--out", p.WS.Path(workspace.ParkingAreas),
	}
}

func (p *Pipeline) rerouterArgs() []string {
	return []string{
		"-a", p.WS.Path(workspace.MergedParking),
		"-n", p.WS.Path(workspace.Network),
		"--max-number-alternatives", strconv.Itoa(p.Cfg.Rerouters.MaxAlternatives),
		"--max-distance-alternatives", formatFloat(p.Cfg.Rerouters.MaxDistanceAlternatives),
		"--min-capacity-visibility-true", strconv.Itoa(p.Cfg.Rerouters.MinCapacityVisibility),
		"--max-distance-visibility-true", formatFloat(p.Cfg.Rerouters.MaxDistanceVisibility),
		"-o", p.WS.Path(workspace.ParkingRerouters),
	}
}

func (p *Pipeline) polyconvertArgs() []string {
	return []string{
		"--osm", p.OSM,
		"--net", workspace.Network,
		"-o", workspace.Polygons,
	}
}

func (p *Pipeline) tazBuildingsArgs() []string {
	return []string{
		"--osm", p.WS.Path(p.OSM),
		"--net", p.WS.Path(workspace.Network),
		"--taz-output", p.WS.Path(workspace.TAZ),
		"--od-output", p.WS.Path(workspace.ODWeights),
		"--poly-output", p.WS.Path(workspace.BuildingsPrefix),
	}
}

func (p *Pipeline) odMatrixArgs() []string {
	return []string{
		"--taz-weights", p.WS.Path(workspace.ODWeights),
		"--out", p.WS.Path(workspace.ODMatrix),
		"--density", formatFloat(p.Cfg.Population.Density),
	}
}

func (p *Pipeline) agDefaultsArgs() []string {
	return []string{
		"--conf", p.WS.Path(workspace.ActivityGenConfig),
		"--od-amitran", p.WS.Path(workspace.ODMatrix),
		"--out", p.WS.Path(workspace.ScenarioActivityGen),
	}
}

func (p *Pipeline) activityGenArgs() []string {
	return []string{"-c", p.WS.Path(workspace.ScenarioActivityGen)}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
