//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	TickPeriod time.Duration
	// Log receives log lines; the screen belongs to the UI, so nil discards them.
	Log io.Writer
}

var (
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("153"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// stickSteps is how many arrow presses move the stick from center to an end.
const stickSteps = 4

type termTickMsg time.Time

type termModel struct {
	h       *hostHAL
	step    StepFunc
	period  time.Duration
	scratch []byte
	stick   int
	release []Button
	err     error
}

// RunTerminal draws the framebuffer with half-block characters and maps keys
// onto the board's buttons. Terminals report no key releases, so a key press
// is a short tap; "h" latches the spawn button.
func RunTerminal(cfg TerminalConfig, start Starter) error {
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = 30 * time.Millisecond
	}
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}

	h := newHost(cfg.Log, newWallClock())
	step, err := start(h)
	if err != nil {
		return err
	}

	m := termModel{
		h:       h,
		step:    step,
		period:  cfg.TickPeriod,
		scratch: make([]byte, len(h.fb.Buffer())),
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(termModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

func (m termModel) tick() tea.Cmd {
	return tea.Tick(m.period, func(t time.Time) tea.Msg { return termTickMsg(t) })
}

func (m termModel) Init() tea.Cmd { return m.tick() }

func (m termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "z":
			m.tap(ButtonB)
		case "x", "tab":
			m.tap(ButtonA)
		case "h":
			m.h.buttons.Set(ButtonB, !m.h.buttons.Down(ButtonB))
		case "left":
			m.moveStick(-1)
		case "right":
			m.moveStick(1)
		case "c", "down":
			m.moveStick(-m.stick)
		}
	case termTickMsg:
		for _, b := range m.release {
			m.h.buttons.Set(b, false)
		}
		m.release = m.release[:0]
		if m.step != nil {
			if err := m.step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *termModel) tap(b Button) {
	if m.h.buttons.Down(b) {
		return
	}
	m.h.buttons.Set(b, true)
	m.release = append(m.release, b)
}

func (m *termModel) moveStick(delta int) {
	m.stick += delta
	if m.stick > stickSteps {
		m.stick = stickSteps
	}
	if m.stick < -stickSteps {
		m.stick = -stickSteps
	}
	span := int(JoystickRawMax - JoystickRawCenter)
	if m.stick < 0 {
		span = int(JoystickRawCenter - JoystickRawMin)
	}
	m.h.stick.set(uint16(int(JoystickRawCenter) + m.stick*span/stickSteps))
}

func (m termModel) View() string {
	frame := m.h.fb.snapshot(m.scratch)
	screen := halfBlocks(m.scratch, hostWidth, hostHeight)

	hold := "off"
	if m.h.buttons.Down(ButtonB) {
		hold = "on"
	}
	status := statusStyle.Render(fmt.Sprintf("frame %d  stick %+d/%d  hold %s", frame, m.stick, stickSteps, hold))
	help := helpStyle.Render("space/z drop  h hold  tab/x view  ←/→ stick  c center  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, panelStyle.Render(screen), status, help)
}

// halfBlocks renders a mono page buffer with two pixel rows per text line.
func halfBlocks(buf []byte, w, h int) string {
	var b strings.Builder
	b.Grow((w*3 + 1) * (h + 1) / 2)
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := MonoPixel(buf, w, h, x, y)
			bottom := MonoPixel(buf, w, h, x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
