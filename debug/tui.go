package debug

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea model driving the interactive debugger: it never
// touches the CPU directly, only through a Surface, so it stays valid
// whether or not the scheduler's executor goroutine is also running.
type model struct {
	surface *Surface
	prevPC  uint16
	err     error
}

// Init performs no initial command; the machine is expected to already be
// loaded and reset by the caller before the TUI starts.
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles a single key press: space or j steps one instruction, r
// starts free-run, p pauses, and q quits.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.surface.Snapshot().PC
			m.surface.Step()
		case "r":
			m.surface.Run()
		case "p":
			m.surface.Pause()
		}
	}
	return m, nil
}

// renderPage renders one 16-byte RAM row as a line, highlighting the byte
// at the current PC.
func renderPage(window []byte, start, pc uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i, b := range window {
		if start+uint16(i) == pc {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) status(snap Snapshot) string {
	var flags string
	for _, set := range []bool{
		snap.Flags.Negative,
		snap.Flags.Overflow,
		snap.Flags.Unused,
		snap.Flags.Break,
		snap.Flags.Decimal,
		snap.Flags.InterruptDisable,
		snap.Flags.Zero,
		snap.Flags.Carry,
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04X (was %04X)
 A: %02X
 X: %02X
 Y: %02X
SP: %02X
cycles: %d  instructions: %d  overruns: %d
N V U B D I Z C
`,
		snap.PC, m.prevPC,
		snap.A, snap.X, snap.Y, snap.SP,
		snap.Cycles, snap.Instructions, snap.Stats.Overruns,
	) + flags
}

func (m model) pageTable(snap Snapshot) string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01X  ", b)
	}
	rows := []string{header}

	pc := snap.PC
	base := pc &^ 0x000F
	offsets := []uint16{0, 0x10, 0x20, base, base + 0x10, base + 0x20}
	for _, start := range offsets {
		rows = append(rows, renderPage(m.surface.RAMWindow(start, 16), start, pc))
	}
	return strings.Join(rows, "\n")
}

// View renders the current frame: a RAM page table, register/flag status,
// and a dump of the in-flight instruction record.
func (m model) View() string {
	snap := m.surface.Snapshot()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(snap),
			m.status(snap),
		),
		"",
		spew.Sdump(snap.Current),
	)
}

// Run starts an interactive debugger TUI over surface and blocks until the
// user quits.
func Run(surface *Surface) error {
	p := tea.NewProgram(model{surface: surface})
	_, err := p.Run()
	return err
}
