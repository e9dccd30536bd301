package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/iforevans/GameOfLife64/src/universe"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal viewer: it presents the staged frames
//and drives the engine plus the cell editor through keybindings.
//The editor cursor is view-local state; the engine never reads the display.
type ConsoleUI struct {
	u          universe.Universe
	g          *gocui.Gui
	k          []keyBindings
	cx, cy     int //editor cursor, logical field coordinates
	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("editing", aurora.BlueFg).String(),
		universe.RunningStateStep:     "do the step",
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewViewTerminal() *ConsoleUI {

	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextRound,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'w',
			"W",
			"Settle with random",
			t.cmdSettleWithRandom,
			""},
		{gocui.KeySpace,
			"SPACE",
			"Toggle cell",
			t.cmdToggle,
			""},
		{'c',
			"C",
			"Clear row",
			t.cmdClearRow,
			""},
		{'x',
			"X",
			"Clear all",
			t.cmdClear,
			""},
		{'b',
			"B",
			"Block",
			t.cmdPreset("block", 0, 0),
			""},
		{'l',
			"L",
			"Blinker",
			t.cmdPreset("blinker", -1, 0),
			""},
		{'g',
			"G",
			"Glider",
			t.cmdPreset("glider", -1, -1),
			""},
		{'u',
			"U",
			"Glider gun",
			t.cmdPresetGun,
			""},
		{gocui.KeyArrowUp,
			"↑↓←→",
			"Move cursor",
			t.cmdCursor(0, -1),
			""},
		{gocui.KeyArrowDown,
			"",
			"",
			t.cmdCursor(0, 1),
			""},
		{gocui.KeyArrowLeft,
			"",
			"",
			t.cmdCursor(-1, 0),
			""},
		{gocui.KeyArrowRight,
			"",
			"",
			t.cmdCursor(1, 0),
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"field"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(u universe.Universe) {
	t.u = u
	o := u.Options()
	t.cx, t.cy = o.Width/2, o.Height/2
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderField(t.u.Frame())
	t.renderConfiguration()
	t.renderStatus()
}

//editing reports whether the cursor should be drawn: the editor is active
//whenever the simulation is not stepping
func (t *ConsoleUI) editing() bool {
	mode := t.u.Status().RunningMode
	return mode == universe.RunningStateManual || mode == universe.RunningStateFinished
}

func (t *ConsoleUI) renderField(f universe.Frame) {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("field")
		if e != nil {
			return e
		}
		//the entire field is redrawn at once
		//this terminal driver allows redrawing only changed chars
		//there is an opportunity to speed up with a selective redraw
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		if f.Width > maxW || f.Height > maxH {
			crop = true
		}
		cursor := t.editing()

		var b bytes.Buffer

		for y := 0; y < f.Height; y++ {
			//discard the data outside the view area
			if y >= maxH {
				break
			}
			//line feed char
			if y != 0 {
				b.WriteByte(10)
			}
			if crop && y == (maxH-1) {
				b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
				break
			}
			for x, gl := range f.Row(y) {
				if x >= maxW {
					break
				}
				switch {
				case cursor && x == t.cx && y == t.cy:
					b.WriteString(aurora.Reverse(string(gl)).String())
				case gl == universe.LiveGlyph:
					b.WriteString(t.liveFiller)
				default:
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	s := t.u.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", s.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when called from a goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.u.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Conway's Life - the C64 classic"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
		t.renderField(t.u.Frame())
	} else {
		t.renderField(t.u.Frame())
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.u.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.u.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.u.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.u.Clear()
	return nil
}

func (t *ConsoleUI) cmdClearRow(_ *gocui.View) error {
	t.u.ClearRow(t.cy)
	return nil
}

func (t *ConsoleUI) cmdToggle(_ *gocui.View) error {
	t.u.InverseCell(t.cx, t.cy)
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.u.SettleWithRandomData()
	return nil
}

//cmdCursor moves the editor cursor, wrapping around the field edges
func (t *ConsoleUI) cmdCursor(dx int, dy int) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		o := t.u.Options()
		t.cx = (t.cx + dx + o.Width) % o.Width
		t.cy = (t.cy + dy + o.Height) % o.Height
		t.renderField(t.u.Frame())
		return nil
	}
}

//cmdPreset stamps a builtin template near the middle of the field
func (t *ConsoleUI) cmdPreset(name string, ax int, ay int) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		o := t.u.Options()
		t.u.StampTemplate(name, o.Width/2+ax, o.Height/2+ay)
		return nil
	}
}

//the gun needs room to shoot, so it is anchored near the top-left corner
func (t *ConsoleUI) cmdPresetGun(_ *gocui.View) error {
	t.u.StampTemplate("gun", 1, 2)
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.cx, t.cy = cx, cy
	t.u.InverseCell(cx, cy)
	return nil
}
