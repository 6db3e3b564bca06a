package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// recordingGame remembers what the platform asked of it.
type recordingGame struct {
	resets  int
	frames  [][]core.Action
	state   core.GameState
	resized [][2]int
}

func (g *recordingGame) ID() string    { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }

func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Actions())
	return core.StepResult{State: g.state}
}

func (g *recordingGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "recording")
}

func (g *recordingGame) State() core.GameState { return g.state }

type resizableGame struct {
	recordingGame
}

func (g *resizableGame) Resize(w, h int) { g.resized = append(g.resized, [2]int{w, h}) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestKeysCollectIntoNextTick(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), nil)
	m.Init()
	assert.Equal(t, 1, game.resets)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd, "ticking continues")

	m, _ = update(t, m, TickMsg{})

	require.Len(t, game.frames, 2)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionRotate}, game.frames[0])
	assert.Empty(t, game.frames[1], "input is cleared after each tick")
	assert.False(t, m.quitting)
}

func TestQuitKey(t *testing.T) {
	m := NewModel(&recordingGame{}, testConfig(), nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestResizeReachesResizableGame(t *testing.T) {
	game := &resizableGame{}
	m := NewModel(game, testConfig(), nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Zero(t, game.resets, "resizable games keep their session")
	require.Len(t, game.resized, 1)
	assert.Equal(t, 100, game.resized[0][0])
	assert.Less(t, game.resized[0][1], 40, "the help footer takes the last rows")
	assert.Equal(t, game.resized[0][1], m.screen.Height())
}

func TestResizeResetsOtherGames(t *testing.T) {
	game := &recordingGame{}
	m := NewModel(game, testConfig(), nil)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 1, game.resets)
}

func TestHelpToggleShrinksScreen(t *testing.T) {
	m := NewModel(&resizableGame{}, testConfig(), nil)
	short := m.screen.Height()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.screen.Height(), short)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Equal(t, short, m.screen.Height())
}

func TestViewIncludesGameAndHelp(t *testing.T) {
	m := NewModel(&recordingGame{}, testConfig(), nil)
	view := m.View()

	assert.Contains(t, view, "recording")
	assert.Contains(t, view, "rotate")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "[][]", core.ColorCyan)
	s.DrawText(5, 1, "score")

	out := RenderScreen(s)
	assert.Contains(t, out, "[][]")
	assert.Contains(t, out, "score")
}
