package universe

//Display glyphs staged by the transition engine.
//The viewer may decide colour and emphasis, never the character.
const (
	LiveGlyph byte = 'O'
	DeadGlyph byte = ' '
)

//Frame is the staged character image of one generation: Width*Height glyph
//bytes in row-major order. It is rebuilt in full before every present, so a
//shown frame is never partially stale.
type Frame struct {
	Width  int
	Height int
	cells  []byte
}

func newFrame(width int, height int) *Frame {
	f := &Frame{Width: width, Height: height, cells: make([]byte, width*height)}
	f.fill(DeadGlyph)
	return f
}

//Row returns one display row of the frame
func (f *Frame) Row(y int) []byte { return f.cells[y*f.Width : (y+1)*f.Width] }

//set stages a single glyph
func (f *Frame) set(x int, y int, g byte) { f.cells[y*f.Width+x] = g }

func (f *Frame) fill(g byte) {
	for i := range f.cells {
		f.cells[i] = g
	}
}

func (f *Frame) fillRow(y int, g byte) {
	row := f.Row(y)
	for i := range row {
		row[i] = g
	}
}

//glyph picks the display character for a cell state
func glyph(v Cell) byte {
	if v != 0 {
		return LiveGlyph
	}
	return DeadGlyph
}

//rebuild re-derives every glyph from the board's current interior.
//The result is byte-for-byte the frame a transition step would have staged
//for the same generation. Used after settling, stamping and editing.
func (f *Frame) rebuild(b *Board) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.set(x, y, glyph(b.Get(x, y)))
		}
	}
}

//snapshot copies the staged frame in one block
func (f *Frame) snapshot() Frame {
	c := make([]byte, len(f.cells))
	copy(c, f.cells)
	return Frame{Width: f.Width, Height: f.Height, cells: c}
}
