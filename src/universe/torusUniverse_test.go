package universe

import (
	"reflect"
	"testing"
)

func newTestUniverse(t *testing.T) *TorusUniverse {
	t.Helper()
	o := DefaultUniverseOptions
	o.Seed = 1
	u := NewTorusUniverse(&o, nil)
	t.Cleanup(func() { u.Close() })
	return u
}

//gridSnapshot copies the logical field of the current generation
func gridSnapshot(u *TorusUniverse) [][]Cell {
	g := make([][]Cell, u.options.Height)
	for y := range g {
		g[y] = make([]Cell, u.options.Width)
		for x := range g[y] {
			g[y][x] = u.CellAt(x, y)
		}
	}
	return g
}

//checkFrameConsistent asserts the staged frame mirrors the board cell by cell
func checkFrameConsistent(t *testing.T, u *TorusUniverse) {
	t.Helper()
	f := u.Frame()
	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		for x := 0; x < f.Width; x++ {
			if row[x] != glyph(u.CellAt(x, y)) {
				t.Fatalf("frame glyph at (%d,%d) is %q, cell state is %d", x, y, row[x], u.CellAt(x, y))
			}
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	u := newTestUniverse(t)
	u.Settle([][]int{{10, 10}, {11, 10}, {10, 11}, {11, 11}})
	want := gridSnapshot(u)
	for i := 1; i <= 5; i++ {
		u.step()
		if got := gridSnapshot(u); !reflect.DeepEqual(got, want) {
			t.Fatalf("block changed on step %d", i)
		}
	}
}

func TestBlinkerPeriod(t *testing.T) {
	u := newTestUniverse(t)
	u.Settle([][]int{{10, 10}, {11, 10}, {12, 10}})
	horizontal := gridSnapshot(u)

	u.step()
	vertical := gridSnapshot(u)
	for _, c := range [][]int{{11, 9}, {11, 10}, {11, 11}} {
		if vertical[c[1]][c[0]] != 1 {
			t.Fatalf("expected vertical blinker cell at (%d,%d)", c[0], c[1])
		}
	}

	phases := [2][][]Cell{horizontal, vertical}
	for i := 2; i <= 4; i++ {
		u.step()
		if got := gridSnapshot(u); !reflect.DeepEqual(got, phases[i%2]) {
			t.Fatalf("blinker out of phase at step %d", i)
		}
	}
}

//TestGliderTranslation: after 4 steps the glider is its original shape
//translated by (1,1) toward the bottom-right
func TestGliderTranslation(t *testing.T) {
	u := newTestUniverse(t)
	glider := Template{Coordinates: [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}}
	u.Settle(glider.Translated(5, 5))
	before := gridSnapshot(u)

	for i := 0; i < 4; i++ {
		u.step()
	}

	after := gridSnapshot(u)
	for y := 0; y < u.options.Height; y++ {
		for x := 0; x < u.options.Width; x++ {
			want := Cell(0)
			if x >= 1 && y >= 1 {
				want = before[y-1][x-1]
			}
			if after[y][x] != want {
				t.Fatalf("cell (%d,%d) after 4 steps: got %d, want %d", x, y, after[y][x], want)
			}
		}
	}
}

//TestBlinkerWrapsAcrossEdge: an oscillator straddling the right edge must
//behave exactly as it would in the middle of the field
func TestBlinkerWrapsAcrossEdge(t *testing.T) {
	u := newTestUniverse(t)
	u.Settle([][]int{{39, 10}, {0, 10}, {1, 10}})
	u.step()
	for _, c := range [][]int{{0, 9}, {0, 10}, {0, 11}} {
		if u.CellAt(c[0], c[1]) != 1 {
			t.Fatalf("expected wrapped blinker cell at (%d,%d)", c[0], c[1])
		}
	}
	if u.CellAt(39, 10) != 0 || u.CellAt(1, 10) != 0 {
		t.Fatal("horizontal blinker arms survived across the seam")
	}
}

func TestFrameStaysConsistent(t *testing.T) {
	u := newTestUniverse(t)

	u.Settle([][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}, {20, 12}, {39, 24}})
	checkFrameConsistent(t, u)

	u.step()
	checkFrameConsistent(t, u)

	u.InverseCell(3, 3)
	u.InverseCell(0, 0)
	checkFrameConsistent(t, u)

	u.ClearRow(2)
	checkFrameConsistent(t, u)

	u.clear()
	checkFrameConsistent(t, u)
}

func TestSettleDropsOutOfRange(t *testing.T) {
	u := newTestUniverse(t)
	u.Settle([][]int{{-1, 5}, {5, -2}, {40, 5}, {5, 25}, {39, 24}})
	if got := u.liveCells(); got != 1 {
		t.Fatalf("expected the single in-range cell to settle, got %d live cells", got)
	}
	if u.CellAt(39, 24) != 1 {
		t.Fatal("in-range corner cell was not settled")
	}
}

func TestStepCountsLiveCells(t *testing.T) {
	u := newTestUniverse(t)
	u.Settle([][]int{{10, 10}, {11, 10}, {10, 11}, {11, 11}})
	u.step()
	if got := u.Status().LiveCells; got != 4 {
		t.Fatalf("live cell count after step: got %d, want 4", got)
	}
}

//TestParallelMatchesTorus drives both engines over the same soup, including
//cells on the wrap seams, and expects identical generations throughout
func TestParallelMatchesTorus(t *testing.T) {
	soup := [][]int{
		{21, 12}, {22, 12}, {20, 13}, {21, 13}, {21, 14}, //R-pentomino
		{0, 0}, {39, 0}, {0, 24}, {39, 24}, {1, 0}, {38, 24},
		{5, 5}, {6, 5}, {7, 5},
	}

	oa := DefaultUniverseOptions
	a := NewTorusUniverse(&oa, nil)
	t.Cleanup(func() { a.Close() })

	ob := DefaultUniverseOptions
	b := NewParallelUniverse(&ob, nil).(*ParallelUniverse)
	t.Cleanup(func() { b.Close() })

	a.Settle(soup)
	b.Settle(soup)

	for i := 1; i <= 20; i++ {
		a.step()
		b.step()
		if !reflect.DeepEqual(gridSnapshot(a), gridSnapshot(b.TorusUniverse)) {
			t.Fatalf("engines diverged at step %d", i)
		}
		checkFrameConsistent(t, b.TorusUniverse)
	}
}
