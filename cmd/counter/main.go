// Command counter hosts a small widget tree inside a bubbletea program,
// rendering through the terminal cell backend. Click the buttons or use
// +/-, tab and enter.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"loom"
)

// CounterState is the application data. Plain value semantics: Clone is
// a copy, Same is field equality.
type CounterState struct {
	Count int
}

func (s CounterState) Same(other CounterState) bool { return s == other }
func (s CounterState) Clone() CounterState          { return s }

// cell size used for both layout and the painter grid.
var cellSize = loom.Size{Width: 8, Height: 16}

func buildUI() loom.Widget[CounterState] {
	countLabel := loom.LabelOf(func(s *CounterState) string {
		return fmt.Sprintf("count: %d", s.Count)
	})

	buttons := loom.Row[CounterState]().
		Add(loom.NewButton("-", func(ctx *loom.EventCtx, s *CounterState) {
			s.Count--
		})).
		Add(loom.NewButton("+", func(ctx *loom.EventCtx, s *CounterState) {
			s.Count++
		}))

	col := loom.Column[CounterState]().
		Add(countLabel).
		Add(buttons)

	return loom.NewBackground[CounterState](loom.PadAll(16, col))
}

type model struct {
	root    *loom.Root[CounterState]
	painter *loom.CellPainter
	cols    int
	rows    int
}

func newModel() model {
	return model{
		root: loom.NewRoot(buildUI(), CounterState{}),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		loom.PutCellPainter(m.painter)
		m.painter = loom.GetCellPainter(m.cols, m.rows, cellSize)
		m.root.Event(loom.WindowSize{Size: loom.Size{
			Width:  float64(m.cols) * cellSize.Width,
			Height: float64(m.rows) * cellSize.Height,
		}})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.root.FocusNext()
		case "shift+tab":
			m.root.FocusPrev()
		case "+":
			m.root.Apply(func(s *CounterState) { s.Count++ })
		case "-":
			m.root.Apply(func(s *CounterState) { s.Count-- })
		default:
			m.root.Event(loom.KeyDown{Key: msg.String()})
		}

	case tea.MouseMsg:
		pos := loom.Point{
			X: (float64(msg.X) + 0.5) * cellSize.Width,
			Y: (float64(msg.Y) + 0.5) * cellSize.Height,
		}
		me := loom.MouseEvent{Pos: pos, WindowPos: pos, Button: loom.MouseLeft, Count: 1}
		switch msg.Action {
		case tea.MouseActionPress:
			m.root.Event(loom.MouseDown{MouseEvent: me})
		case tea.MouseActionRelease:
			m.root.Event(loom.MouseUp{MouseEvent: me})
		case tea.MouseActionMotion:
			me.Button = loom.MouseNone
			m.root.Event(loom.MouseMove{MouseEvent: me})
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.painter == nil {
		return ""
	}
	m.painter.Reset()
	m.root.InvalidateAll()
	m.root.Paint(m.painter)
	return m.painter.Render()
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "counter: stdout is not a terminal")
		os.Exit(1)
	}
	p := tea.NewProgram(newModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "counter:", err)
		os.Exit(1)
	}
}
