package view

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/iforevans/GameOfLife64/src/universe"
)

//ConsoleOut is the batch-mode viewer: it logs progress to stdout and, when
//the simulation finishes, blits the last staged frame and the run totals.
type ConsoleOut struct {
	u         universe.Universe
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	if st.RunningMode == universe.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Println("\nLast frame:")
		c.presentFrame()
		resultData := map[string]interface{}{
			"Last generation": st.Generation,
			"Total time":      totalTime,
			"Live cells":      st.LiveCells,
		}
		fmt.Println("Finished:")
		c.printHashData(resultData)
	} else if st.RunningMode == universe.RunningStateRun {
		if st.Generation%10 == 0 {
			fmt.Printf("  Generations done: %v\n", st.Generation)
		}
	}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

//presentFrame writes the staged frame to the device row by row, glyph bytes
//verbatim - the glyph decision was already made by the transition engine
func (c *ConsoleOut) presentFrame() {
	f := c.u.Frame()
	w := bufio.NewWriter(os.Stdout)
	for y := 0; y < f.Height; y++ {
		_, _ = w.Write(f.Row(y))
		_ = w.WriteByte('\n')
	}
	_ = w.Flush()
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Printf("  %s: %v\n", propName, d[propName])
	}
}
