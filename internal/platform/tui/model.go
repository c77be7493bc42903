package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/desk-pro/dino-qube/internal/core"
	"github.com/desk-pro/dino-qube/internal/game"
	"github.com/desk-pro/dino-qube/internal/storage"
)

// scoreKeeper owns the link between the simulation and score persistence.
// The game's hooks close over this single shared pointer, never over a
// model value. Bubble Tea copies the model on every update, so the high
// score the collision check reads is always the latest one.
type scoreKeeper struct {
	store *storage.Store
	best  int
}

// newScoreKeeper loads the current best score from storage (best-effort).
func newScoreKeeper(store *storage.Store) *scoreKeeper {
	k := &scoreKeeper{store: store}
	k.Refresh()
	return k
}

// Best returns the freshest known high score.
func (k *scoreKeeper) Best() int {
	return k.best
}

// Refresh re-reads the high score from storage. Called at run start so a
// record set elsewhere (another SSH session sharing the leaderboard) is
// picked up.
func (k *scoreKeeper) Refresh() {
	if k.store == nil {
		return
	}
	if best, err := k.store.HighScore(); err == nil && best > k.best {
		k.best = best
	}
}

// Record persists a finished run and updates the cached best.
// Best-effort: play continues regardless of storage errors.
func (k *scoreKeeper) Record(final int) {
	if final <= 0 {
		return
	}
	if k.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		k.store.SaveScore(final)
	}
	if final > k.best {
		k.best = final
	}
}

// Model is the Bubble Tea model driving the runner: it computes the frame
// delta, steps the simulation and paints frames.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	scores     *scoreKeeper
	keymap     *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the runner.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	keeper := newScoreKeeper(store)
	g.SetHooks(game.Hooks{
		HighScore: keeper.Best,
		GameOver:  keeper.Record,
	})

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     keeper,
		keymap:     NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// A jump out of game over starts a fresh run; pull in any record set
	// elsewhere before the run's first collision comparison.
	if !m.gameState.Running && m.inputFrame.Has(core.ActionJump) {
		m.scores.Refresh()
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in a
// fixed logical space, so a resize only changes the projection and the run
// keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step. The delta is wall-clock time since
// the previous tick normalized to nominal frames and clamped, so a long
// host pause cannot produce one catastrophic physics step.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)

	dt := 1.0
	if !m.lastTick.IsZero() {
		nominal := time.Second / time.Duration(m.config.TickRate)
		dt = core.ClampF(float64(now.Sub(m.lastTick))/float64(nominal), 0, game.MaxDelta)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current frame to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".dinoqube", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
