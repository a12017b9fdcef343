package main

import (
	"fmt"
	"os"

	"logical-clock/pkg/config"
	"logical-clock/pkg/sim"
	"logical-clock/pkg/util/logging"
)

func main() {
	path := "cmd/scenario.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Read(path)
	if err != nil {
		panic(err)
	}

	cfg.PopulateDefaults()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	logging.Init(cfg.Log.Level, cfg.Clock.Kind)

	runner, err := sim.New(cfg)
	if err != nil {
		panic(err)
	}

	report, err := runner.Run()
	if err != nil {
		panic(err)
	}

	fmt.Print(report)
}
