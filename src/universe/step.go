package universe

//The branch-free transition rule: the next state of a cell is indexed by its
//live-neighbour count, with one table per current state. Birth on exactly 3
//neighbours, survival on 2 or 3. The tables are fixed for the process
//lifetime; the per-cell cost is the same whatever the neighbour count.
var (
	ruleDead  = [9]Cell{0, 0, 0, 1, 0, 0, 0, 0, 0}
	ruleAlive = [9]Cell{0, 0, 1, 1, 0, 0, 0, 0, 0}
)

//stepRows computes the next generation for the logical rows [yLo,yHi),
//reading cur and writing nxt plus the staged display frame. cur's padding
//ring must already be wrap-synchronized, so every neighbour read is
//unconditional. Writes are confined to the given rows of nxt and frame,
//which lets engine variants split the field between workers without
//overlapping cells.
func stepRows(cur []Cell, nxt []Cell, frame *Frame, stride int, yLo int, yHi int) (liveCells int, changed bool) {
	width := stride - 2
	for y := yLo; y < yHi; y++ {
		base := (y + 1) * stride
		for x := 1; x <= width; x++ {
			n := cur[base-stride+x-1] + cur[base-stride+x] + cur[base-stride+x+1] +
				cur[base+x-1] + cur[base+x+1] +
				cur[base+stride+x-1] + cur[base+stride+x] + cur[base+stride+x+1]

			alive := cur[base+x]
			var v Cell
			if alive != 0 {
				v = ruleAlive[n]
			} else {
				v = ruleDead[n]
			}
			nxt[base+x] = v
			frame.set(x-1, y, glyph(v))
			if v != 0 {
				liveCells++
			}
			changed = changed || v != alive
		}
	}
	return
}
