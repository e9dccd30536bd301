package universe

import (
	"sync"
	"time"
)

/*
	Engine variant with a parallel transition computation: the field rows are
	split into bands, each computed by its own goroutine. Workers write
	disjoint rows of the scratch buffer and the staged frame, and the role
	swap happens only after every worker has finished, so a reader never sees
	a half-written generation promoted to current.
*/

const (
	DefWorkers          = 8 //default workers
	DefMinRowsPerWorker = 3 //minimum rows for one worker
)

type ParallelUniverse struct {
	*TorusUniverse
	bands []rowBand
}

//rowBand describes the logical rows [yLo, yHi) owned by one worker
type rowBand struct {
	yLo       int
	yHi       int
	liveCells int
	changed   bool
}

func NewParallelUniverse(o *Options, stateCh chan Status) Universe {
	pu := ParallelUniverse{TorusUniverse: NewTorusUniverse(o, stateCh)}
	//redefine the nextIteration
	pu.TorusUniverse.nextIteration = pu.nextIteration

	height := pu.field.board.height
	rowsPerWorker := height / DefWorkers
	if rowsPerWorker < DefMinRowsPerWorker {
		rowsPerWorker = DefMinRowsPerWorker
	} else if rowsPerWorker*DefWorkers < height {
		rowsPerWorker++
	}
	for yLo := 0; yLo < height; yLo += rowsPerWorker {
		yHi := yLo + rowsPerWorker
		if yHi > height {
			yHi = height
		}
		pu.bands = append(pu.bands, rowBand{yLo: yLo, yHi: yHi})
	}
	pu.options.Advanced["engine"] = "parallel"
	pu.options.Advanced["Workers"] = len(pu.bands)
	pu.options.Advanced["Rows per worker"] = rowsPerWorker
	return &pu
}

//nextIteration computes the next generation with one goroutine per row band
//the borders are wrapped once up front, so every worker reads unconditionally
func (pu *ParallelUniverse) nextIteration() (hasLiveCells bool, changed bool) {
	pu.field.Lock()
	defer pu.field.Unlock()
	start := time.Now()
	b := pu.field.board
	b.wrapBorders()
	cur, nxt := b.current(), b.next()
	var waitGroup sync.WaitGroup
	for i := range pu.bands {
		band := &pu.bands[i]
		waitGroup.Add(1)
		go func() {
			band.liveCells, band.changed = stepRows(cur, nxt, pu.field.frame, b.stride, band.yLo, band.yHi)
			waitGroup.Done()
		}()
	}
	waitGroup.Wait()
	b.swap()
	liveCells := 0
	for _, band := range pu.bands {
		liveCells += band.liveCells
		changed = changed || band.changed
	}
	pu.state.LiveCells = liveCells
	pu.state.StepTime = time.Since(start)
	return liveCells > 0, changed
}
