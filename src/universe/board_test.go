package universe

import "testing"

//fillPattern gives every cell a deterministic 0/1 value so the wrap checks
//exercise both states along all edges
func fillPattern(b *Board) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.Set(x, y, Cell((x*31+y*17)%2))
		}
	}
}

func TestWrapBordersTorusEquivalence(t *testing.T) {
	const w, h = 7, 5
	b := newBoard(w, h)
	fillPattern(b)
	b.wrapBorders()

	cur := b.current()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					padded := cur[(y+1+dy)*b.stride+(x+1+dx)]
					torus := b.Get((x+dx+w)%w, (y+dy+h)%h)
					if padded != torus {
						t.Fatalf("neighbour (%d,%d) of cell (%d,%d): padded read %d, torus value %d",
							dx, dy, x, y, padded, torus)
					}
				}
			}
		}
	}
}

func TestWrapBordersCorners(t *testing.T) {
	const w, h = 4, 3
	b := newBoard(w, h)
	b.Set(0, 0, 1)
	b.Set(w-1, h-1, 1)
	b.wrapBorders()

	cur := b.current()
	//the padded corner opposite (0,0) must carry its value
	if cur[(h+1)*b.stride+(w+1)] != 1 {
		t.Fatal("bottom-right padded corner does not mirror cell (0,0)")
	}
	if cur[0] != 1 {
		t.Fatal("top-left padded corner does not mirror the opposite logical corner")
	}
}

func TestSwapRoleExchange(t *testing.T) {
	b := newBoard(6, 4)
	cur, nxt := b.current(), b.next()
	b.Set(2, 1, 1)
	nxt[b.index(3, 2)] = 1

	b.swap()

	if &b.current()[0] != &nxt[0] {
		t.Fatal("swap did not promote the scratch buffer to current")
	}
	if &b.next()[0] != &cur[0] {
		t.Fatal("swap did not demote the previous current buffer")
	}
	//contents travel with the role, nothing is copied or zeroed
	if b.Get(3, 2) != 1 {
		t.Fatal("cell written to the scratch buffer lost by swap")
	}
	if b.next()[b.index(2, 1)] != 1 {
		t.Fatal("cell of the previous generation lost by swap")
	}
}

func TestClearRow(t *testing.T) {
	b := newBoard(5, 4)
	fillPattern(b)
	b.clearRow(2)
	for x := 0; x < 5; x++ {
		if b.Get(x, 2) != 0 {
			t.Fatalf("cell (%d,2) still alive after clearRow", x)
		}
	}
	//the neighbouring rows stay untouched
	alive := 0
	for x := 0; x < 5; x++ {
		alive += int(b.Get(x, 1)) + int(b.Get(x, 3))
	}
	if alive == 0 {
		t.Fatal("clearRow wiped more than one row")
	}
}
