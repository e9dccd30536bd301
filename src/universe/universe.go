package universe

import "time"

//Cell is one bit of life state kept as a small integer,
//so neighbour counting is plain addition with no branching
type Cell = uint8

//Options represents the Universe's configurable options
type Options struct {
	Width           int
	Height          int
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	Seed            int64                  //0 picks a seed from the clock
	Advanced        map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at a concrete moment
type Status struct {
	Generation  int
	RunningMode RunningState
	LiveCells   int
	StepTime    time.Duration
	Details     map[string]interface{} //advanced details (engine specific)
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//Template represents a seeding template which can be used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] offsets from the template anchor
}

//Translated returns the template coordinates moved so the anchor lands at x,y
func (t Template) Translated(x int, y int) [][]int {
	vc := make([][]int, 0, len(t.Coordinates))
	for _, c := range t.Coordinates {
		vc = append(vc, []int{c[0] + x, c[1] + y})
	}
	return vc
}

//The universe running state at the concrete moment
type RunningState int

//default options
const (
	DefWidth            = 40
	DefHeight           = 25
	DefMaxSteps         = 1000
	DefMaxSkippedTicks  = 5
	DefSimulationPacing = 0 //no pacing: the step rate is whatever the computation achieves
)

const (
	RunningStateManual RunningState = iota
	RunningStateStep
	RunningStateRun
	RunningStateFinished
)

var DefaultUniverseOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Interval:        DefSimulationPacing,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
}

type Universe interface {
	Status() Status
	Options() Options
	Frame() Frame
	CellAt(x int, y int) Cell
	StateCh() chan Status
	AddTemplate(tmpl Template)
	SettleTemplate(name string)
	StampTemplate(name string, x int, y int)
	SettleWithRandomData()
	Settle(vc [][]int)
	InverseCell(x int, y int)
	ClearRow(y int)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}
