package universe

import (
	"math/rand"
	"sync"
	"time"
)

//TorusUniverse is the reference engine: a fixed-size toroidal field kept in
//a pair of padded buffers whose current/next roles alternate each step, plus
//the staged display frame for the generation just computed.
//implements Universe interface
//can be used to create different engines by redefining the nextIteration func
type TorusUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	field struct {
		board *Board
		frame *Frame
		sync.Mutex
	}
	stateCh       chan Status
	views         []Viewer
	templates     map[string]Template
	controlCh     chan func()
	closeCh       chan bool
	rng           *rand.Rand
	nextIteration func() (hasLiveCells bool, changed bool)
}

//NewTorusUniverse creates the TorusUniverse instance
func NewTorusUniverse(o *Options, stateCh chan Status) *TorusUniverse {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	o.Advanced = make(map[string]interface{})
	o.Advanced["engine"] = "torus"

	u := TorusUniverse{
		options:   *o,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
		templates: map[string]Template{},
	}
	//nextIteration can be redefined by a successor
	u.nextIteration = u._nextIteration
	u.state.Details = make(map[string]interface{})
	u.rng = rand.New(rand.NewSource(seedOf(o.Seed)))

	u.field.board = newBoard(o.Width, o.Height)
	u.field.frame = newFrame(o.Width, o.Height)
	for _, t := range BuiltinTemplates {
		u.templates[t.Name] = t
	}
	u.refreshView()
	go u.mainLoop()
	return &u
}

//seedOf resolves the configured seed, sampling the clock when none is given
func seedOf(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by calling SettleTemplate
func (u *TorusUniverse) AddTemplate(tmpl Template) {
	u.templates[tmpl.Name] = tmpl
}

//Settle settles the universe with data
//vc - array of x,y coordinates; out-of-range coordinates are dropped
func (u *TorusUniverse) Settle(vc [][]int) {
	u.field.Lock()
	u.settle(vc, Cell(1))
	u.field.Unlock()
	u.state.LiveCells = u.liveCells()
	u.refreshView()
}

//SettleTemplate populates the universe with the seeding template at its own coordinates
func (u *TorusUniverse) SettleTemplate(name string) {
	tmpl, ok := u.templates[name]
	if !ok {
		return
	}
	u.field.Lock()
	u.settle(tmpl.Coordinates, Cell(1))
	u.field.Unlock()
	u.state.LiveCells = u.liveCells()
	u.refreshView()
}

//StampTemplate clears the field and stamps the named template so its anchor
//lands at x,y. Offsets falling outside the field are dropped, not wrapped.
func (u *TorusUniverse) StampTemplate(name string, x int, y int) {
	tmpl, ok := u.templates[name]
	if !ok {
		return
	}
	u.controlCh <- u.clear
	u.controlCh <- func() {
		u.field.Lock()
		u.settle(tmpl.Translated(x, y), Cell(1))
		u.field.Unlock()
		u.state.LiveCells = u.liveCells()
		u.refreshView()
	}
}

//SettleWithRandomData populates the universe with a uniform random fill
//(every cell is an independent 0/1 draw) and stages the matching frame
func (u *TorusUniverse) SettleWithRandomData() {
	if u.state.RunningMode == RunningStateManual || u.state.RunningMode == RunningStateFinished {
		u.controlCh <- u.clear
		u.controlCh <- func() {
			u.field.Lock()
			b := u.field.board
			liveCells := 0
			for y := 0; y < b.height; y++ {
				for x := 0; x < b.width; x++ {
					v := Cell(u.rng.Intn(2))
					b.Set(x, y, v)
					u.field.frame.set(x, y, glyph(v))
					if v != 0 {
						liveCells++
					}
				}
			}
			u.field.Unlock()
			u.state.LiveCells = liveCells
			u.refreshView()
		}
	}
}

//InverseCell inverses the cell state at point x, y
//the staged frame is patched in place, no full rebuild
func (u *TorusUniverse) InverseCell(x int, y int) {
	if x < 0 || y < 0 || x >= u.options.Width || y >= u.options.Height {
		return
	}
	u.field.Lock()
	v := u.field.board.Get(x, y) ^ 1
	u.field.board.Set(x, y, v)
	u.field.frame.set(x, y, glyph(v))
	u.field.Unlock()
	u.refreshView()
}

//ClearRow kills every cell of one logical row
func (u *TorusUniverse) ClearRow(y int) {
	if y < 0 || y >= u.options.Height {
		return
	}
	u.field.Lock()
	u.field.board.clearRow(y)
	u.field.frame.fillRow(y, DeadGlyph)
	u.field.Unlock()
	u.state.LiveCells = u.liveCells()
	u.refreshView()
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *TorusUniverse) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//StateCh returns the channel with the universe's status updates
func (u *TorusUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *TorusUniverse) Status() Status {
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *TorusUniverse) Options() Options {
	return u.options
}

//Frame returns a snapshot of the staged display frame, copied in one block.
//The snapshot is always a fully formed generation, never a partial frame.
func (u *TorusUniverse) Frame() Frame {
	u.field.Lock()
	defer u.field.Unlock()
	return u.field.frame.snapshot()
}

//CellAt reads the logical cell at x,y of the current generation
func (u *TorusUniverse) CellAt(x int, y int) Cell {
	u.field.Lock()
	defer u.field.Unlock()
	return u.field.board.Get(x, y)
}

//Run starts the universe simulation, returns immediately
func (u *TorusUniverse) Run() {
	u.controlCh <- u.run
}

//Stop stops the universe simulation, returns immediately
//the Status struct will be written to the stateCh on finish
func (u *TorusUniverse) Stop() {
	u.controlCh <- u.stop
}

//Step does one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *TorusUniverse) Step() {
	u.controlCh <- u.step
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (u *TorusUniverse) Clear() {
	u.controlCh <- u.clear
}

//Close stops the main loop, closes the channels, returns immediately
func (u *TorusUniverse) Close() {
	u.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for a command and executes it; nothing suspends mid-command
func (u *TorusUniverse) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case c = <-u.closeCh:

		}
	}
	close(u.closeCh)
	close(u.controlCh)
}

//settle writes one cell value at each coordinate, keeping the staged frame
//consistent. Coordinates outside the field are dropped, not wrapped.
//the caller must hold the field lock
func (u *TorusUniverse) settle(vc [][]int, v Cell) {
	for _, c := range vc {
		x, y := c[0], c[1]
		if x < 0 || y < 0 || x >= u.field.board.width || y >= u.field.board.height {
			continue
		}
		u.field.board.Set(x, y, v)
		u.field.frame.set(x, y, glyph(v))
	}
}

//liveCells calculates the count of live cells
func (u *TorusUniverse) liveCells() int {
	liveCells := 0
	u.field.Lock()
	defer u.field.Unlock()
	b := u.field.board
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) != 0 {
				liveCells++
			}
		}
	}
	return liveCells
}

//switchRunningState switches the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *TorusUniverse) switchRunningState(to RunningState) {
	u.state.Lock()
	u.state.RunningMode = to
	st := u.state.Status
	u.state.Unlock()
	if u.stateCh != nil {
		u.stateCh <- st
	}
}

//run starts the universe simulation cycle
//the simulation stops on Stop() or when the boundary conditions are reached
//(step limit, extinction, or a generation identical to the previous one)
func (u *TorusUniverse) run() {
	go func() {
		u.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := u.state.RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > u.options.MaxSkippedTicks {
				u.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the universe is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				u.controlCh <- func() {
					u.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if u.options.Interval > 0 {
				time.Sleep(u.options.Interval)
			}
		}

	}()
}

//stop stops the universe running cycle
func (u *TorusUniverse) stop() {
	if u.state.RunningMode == RunningStateRun {
		u.switchRunningState(RunningStateManual)
	}
}

//step runs one full tick: present the frame staged by the previous tick,
//synchronize the wrap borders, compute the next generation plus its frame,
//then swap the buffer roles
func (u *TorusUniverse) step() {

	finished := false
	rm := u.state.RunningMode
	maxIter := u.options.MaxSteps
	u.state.Generation++
	defer func() {
		if finished {
			u.switchRunningState(RunningStateFinished)
		} else {
			u.switchRunningState(rm)
		}
		u.refreshView()
	}()

	if maxIter != 0 && u.state.Generation >= maxIter {
		finished = true
		return
	}
	u.switchRunningState(RunningStateStep)
	//show the already staged frame before the buffers are touched
	u.refreshView()
	isAlive, changed := u.nextIteration()
	if !isAlive || !changed {
		finished = true
	}
}

//clear clears the universe data, resets all counters
func (u *TorusUniverse) clear() {
	u.state.Lock()
	u.field.Lock()

	u.state.Generation = 0
	u.state.LiveCells = 0
	u.field.board.clear()
	u.field.frame.rebuild(u.field.board)
	u.state.RunningMode = RunningStateManual
	u.field.Unlock()
	u.state.Unlock()
	u.switchRunningState(RunningStateManual)
	u.refreshView()

}

//_nextIteration does one generation computation:
//wrap the padding ring of the current buffer, walk the interior computing
//every cell's next state into the scratch buffer while staging the display
//frame, then swap the current/next roles. The swap moves no data, so the
//generation just computed becomes current in O(1).
func (u *TorusUniverse) _nextIteration() (hasLiveCells bool, changed bool) {
	u.field.Lock()
	defer u.field.Unlock()
	start := time.Now()
	b := u.field.board
	b.wrapBorders()
	liveCells, changed := stepRows(b.current(), b.next(), u.field.frame, b.stride, 0, b.height)
	b.swap()
	u.state.LiveCells = liveCells
	u.state.StepTime = time.Since(start)
	return liveCells > 0, changed
}

//refreshView calls the Refresh event for all registered views
func (u *TorusUniverse) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
