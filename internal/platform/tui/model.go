package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// jumpHoldWindow approximates a held key in a terminal, which reports key
// repeats but no release events. Each jump press extends the window; glide
// treats the key as held while the window is open.
const jumpHoldWindow = 150 * time.Millisecond

// Model is the Bubble Tea model for a runner session: gameplay plus the
// mode-picker overlay.
type Model struct {
	ctrl   *runner.Controller
	screen *core.Screen
	store  *storage.Store
	rt     core.RuntimeConfig

	input     core.InputFrame
	keyMapper *KeyMapper

	picker     *PickerModel
	lastTick   time.Time
	jumpHeldTo time.Time
	quitting   bool
	scoreSaved bool
}

// NewModel creates a session model for the given controller.
func NewModel(ctrl *runner.Controller, store *storage.Store, rt core.RuntimeConfig) Model {
	return Model{
		ctrl:      ctrl,
		screen:    core.NewScreen(rt.ViewW, rt.ViewH),
		store:     store,
		rt:        rt,
		input:     core.NewInputFrame(),
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		return m.handlePickerKey(msg)
	}

	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		switch m.ctrl.Phase() {
		case runner.PhaseMenu, runner.PhaseGameOver:
			picker := NewPicker(m.ctrl.Mode().ID, m.ctrl.Best(), m.rt.ViewW, m.rt.ViewH)
			m.picker = &picker
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Press(action)
		if action == core.ActionJump {
			m.jumpHeldTo = time.Now().Add(jumpHoldWindow)
		}
	}

	return m, nil
}

// handlePickerKey processes keyboard input while the mode picker is open.
func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.picker.MoveUp()

	case MenuActionDown:
		m.picker.MoveDown()

	case MenuActionSelect:
		if id := m.picker.Selected(); id != "" {
			//nolint:errcheck // The picker only opens outside a run, so the switch cannot be locked
			m.ctrl.SelectMode(id)
		}
		m.picker = nil

	case MenuActionBack:
		m.picker = nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rt.ViewW = msg.Width
	m.rt.ViewH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.ctrl.Resize(msg.Width, msg.Height)
	if m.picker != nil {
		m.picker.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick advances the simulation by the real elapsed time since the
// previous tick. The engine clamps oversized deltas itself.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	deltaMs := core.RefFrameMs
	if !m.lastTick.IsZero() {
		deltaMs = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	if m.picker == nil {
		m.input.Hold(core.ActionJump, now.Before(m.jumpHeldTo))
		m.ctrl.Tick(m.input, deltaMs)

		switch m.ctrl.Phase() {
		case runner.PhaseGameOver:
			if !m.scoreSaved && m.ctrl.FinalScore() > 0 {
				if m.store != nil {
					//nolint:errcheck // Best-effort save, the session continues regardless
					m.store.SaveScore(m.ctrl.Mode().ID, m.ctrl.FinalScore())
				}
				m.scoreSaved = true
			}
		case runner.PhasePlaying:
			m.scoreSaved = false
		}
	}

	m.input.Clear()
	return m, tickCmd(m.rt.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.ctrl.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.ctrl.Mode().ID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.picker != nil {
		return m.picker.View()
	}

	m.ctrl.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a local terminal session for the given mode. Stored best scores
// seed the in-process best map so the HUD shows them from the first frame.
func Run(modeID string, store *storage.Store, rt core.RuntimeConfig) error {
	ctrl, err := runner.NewController(modeID, rt)
	if err != nil {
		return err
	}

	if store != nil {
		if best, err := store.BestScores(); err == nil {
			ctrl.SeedBest(best)
		}
	}

	model := NewModel(ctrl, store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
