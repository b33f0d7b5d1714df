package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/theoremus-urban-solutions/osm-to-scenario/config"
	"github.com/theoremus-urban-solutions/osm-to-scenario/internal"
	"github.com/theoremus-urban-solutions/osm-to-scenario/pipeline"
	"github.com/theoremus-urban-solutions/osm-to-scenario/tools"
	"github.com/theoremus-urban-solutions/osm-to-scenario/workspace"
)

func main() {
	osmFile := flag.String("osm", "", "OSM file (required)")
	outDir := flag.String("out", "", "directory for all the output files (required)")
	cfgPath := flag.String("cfg", "config.yml", "scenario tuning configuration")
	defaultsDir := flag.String("defaults", "defaults", "directory holding the template configuration files")
	profiling := flag.Bool("profiling", false, "enable the per-stage cost report")
	noProfiling := flag.Bool("no-profiling", false, "disable the per-stage cost report")
	leftHand := flag.Bool("lefthand", false, "generate a left-hand traffic scenario")
	skipSim := flag.Bool("skip-simulation", false, "generate the scenario without launching the simulator")
	flag.Parse()

	internal.InitLogging()
	_ = godotenv.Load()

	if *osmFile == "" || *outDir == "" {
		fmt.Fprintln(os.Stderr, "both --osm and --out are required")
		flag.Usage()
		os.Exit(1)
	}
	home, err := tools.Home()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.LoadAppConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration %s: %v\n", *cfgPath, err)
		os.Exit(1)
	}

	ws := workspace.New(*outDir)
	osmName, err := ws.Init(*osmFile, *defaultsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing workspace: %v\n", err)
		os.Exit(1)
	}

	p := pipeline.New(ws, cfg, pipeline.DefaultToolbox(home, cfg), osmName, *leftHand)
	p.Profile = pipeline.NewProfile(*profiling && !*noProfiling)
	if err := p.Profile.StartCPU(ws.Path("profile.pprof")); err != nil {
		log.Printf("profiling unavailable: %v", err)
	}

	ctx := context.Background()
	runErr := p.Run(ctx)
	if runErr == nil && !*skipSim {
		runErr = p.Simulate(ctx)
	}

	p.Profile.StopCPU()
	p.Profile.Report(os.Stdout)

	if runErr != nil {
		var stageErr *pipeline.StageError
		if errors.As(runErr, &stageErr) {
			log.Printf("scenario generation failed at stage %q: %v", stageErr.Stage, stageErr.Err)
		} else {
			log.Printf("scenario generation failed: %v", runErr)
		}
		os.Exit(2)
	}
	log.Printf("done, scenario in %s", ws.Dir)
}
