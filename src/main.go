package main

import (
	"strings"

	"github.com/iforevans/GameOfLife64/src/universe"
	"github.com/iforevans/GameOfLife64/src/view"
	"github.com/integrii/flaggy"
)

var (
	engines = map[string]func(o *universe.Options, stateCh chan universe.Status) universe.Universe{
		"torus": func(o *universe.Options, stateCh chan universe.Status) universe.Universe {
			return universe.NewTorusUniverse(o, stateCh)
		},
		"parallel": universe.NewParallelUniverse,
	}
)

type EnvOptions struct {
	interactive bool
	randomData  bool
	template    string
	engine      string
}

func main() {
	eo, uo := initOptions()

	var stateCh chan universe.Status

	if !eo.interactive {
		stateCh = make(chan universe.Status, 10) //the buffered channel for getting the universe status
	}

	u := engines[eo.engine](uo, stateCh)

	if eo.randomData {
		u.SettleWithRandomData()
	} else {
		u.StampTemplate(eo.template, uo.Width/2-1, uo.Height/2-1)
	}

	if eo.interactive {
		v := view.NewViewTerminal()
		u.RegisterViewer(v)
		v.Start()
		u.Close()
	} else {
		out := view.NewConsoleOut()
		u.RegisterViewer(out)
		out.Start()

		u.Run()
		for st := range stateCh {
			if st.RunningMode == universe.RunningStateFinished {
				break
			}
		}
		u.Close()
		close(stateCh)
	}

}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	uo = &universe.DefaultUniverseOptions
	engineNames := make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	templateNames := make([]string, 0, len(universe.BuiltinTemplates))
	for _, t := range universe.BuiltinTemplates {
		templateNames = append(templateNames, t.Name)
	}
	eo = &EnvOptions{engine: "torus", template: "glider"}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of the simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of the simulation field")
	flaggy.Duration(&uo.Interval, "i", "interval", "Pause between the steps (0 runs at computation speed), for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Int64(&uo.Seed, "", "seed", "Seed for the random fill (0 samples the clock)")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.String(&eo.template, "t", "template", "Seeding template ["+strings.Join(templateNames, "|")+"]")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")

	flaggy.Parse()

	_, ok := engines[eo.engine]
	if !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}

	return
}
