package universe

//Board owns the two generation buffers. Each one is the logical field plus a
//one-cell padding ring, so a cell's eight neighbours can be read without
//wrap checks once the ring has been synchronized with the opposite edges.
//The current/next roles are two indices into the buffer pair; swapping them
//moves no cell data.
type Board struct {
	width  int
	height int
	stride int //padded row length, width+2
	bufs   [2][]Cell
	cur    int //index of the buffer holding the current generation
}

func newBoard(width int, height int) *Board {
	b := &Board{width: width, height: height, stride: width + 2}
	n := (width + 2) * (height + 2)
	b.bufs[0] = make([]Cell, n)
	b.bufs[1] = make([]Cell, n)
	return b
}

//current returns the buffer holding the current generation
func (b *Board) current() []Cell { return b.bufs[b.cur] }

//next returns the scratch buffer the next generation is written into
func (b *Board) next() []Cell { return b.bufs[b.cur^1] }

//swap exchanges the current/next roles in O(1)
func (b *Board) swap() { b.cur ^= 1 }

//index maps logical coordinates to the padded buffer offset
func (b *Board) index(x int, y int) int { return (y+1)*b.stride + (x + 1) }

//Get reads the logical cell at x,y of the current generation
func (b *Board) Get(x int, y int) Cell { return b.current()[b.index(x, y)] }

//Set writes the logical cell at x,y of the current generation
func (b *Board) Set(x int, y int, v Cell) { b.current()[b.index(x, y)] = v }

//wrapBorders refreshes the padding ring of the current buffer so it mirrors
//the opposite logical edge: left border = rightmost column, right border =
//leftmost column, then the two border rows are copied wholesale from the
//opposite interior rows. Columns first, so the border rows carry correct
//corner values.
func (b *Board) wrapBorders() {
	cur := b.current()
	w, h, stride := b.width, b.height, b.stride
	for y := 1; y <= h; y++ {
		row := cur[y*stride : (y+1)*stride]
		row[0] = row[w]
		row[stride-1] = row[1]
	}
	copy(cur[0:stride], cur[h*stride:(h+1)*stride])
	copy(cur[(h+1)*stride:(h+2)*stride], cur[stride:2*stride])
}

//clear kills every cell in both generation buffers
func (b *Board) clear() {
	for i := range b.bufs[0] {
		b.bufs[0][i] = 0
		b.bufs[1][i] = 0
	}
}

//clearRow kills every cell of one logical row of the current generation
func (b *Board) clearRow(y int) {
	row := b.current()[(y+1)*b.stride : (y+2)*b.stride]
	for x := 1; x <= b.width; x++ {
		row[x] = 0
	}
}
