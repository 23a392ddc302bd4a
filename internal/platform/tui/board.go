package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pairs/internal/leaderboard"
	"github.com/vovakirdan/tui-pairs/internal/pairs"
)

// tileCellWidth is the rendered width of one tile, brackets included.
const tileCellWidth = 4

// boardPhase tracks which screen of the play flow is active.
type boardPhase int

const (
	phasePlaying boardPhase = iota
	phaseNameEntry
	phaseResults
)

// BoardModel is the Bubble Tea model for one play session: the tile grid,
// the win prompt, and the post-win results screen.
type BoardModel struct {
	controller *pairs.Controller
	username   string
	width      int
	height     int
	cursor     int
	keyMapper  *KeyMapper
	phase      boardPhase
	nameInput  textinput.Model
	ranked     []leaderboard.Entry
	rank       int
	finalStats pairs.Stats
	saveErr    error
	quitting   bool
	backToMenu bool
}

// NewBoardModel creates a board model for a configured controller.
// username pre-fills the win prompt; pass "" for local play.
func NewBoardModel(controller *pairs.Controller, username string, width, height int) BoardModel {
	ti := textinput.New()
	ti.Placeholder = pairs.AnonymousName
	ti.CharLimit = 24
	ti.Width = 24
	ti.SetValue(username)

	return BoardModel{
		controller: controller,
		username:   username,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		nameInput:  ti,
	}
}

// Init starts the session clock.
func (m BoardModel) Init() tea.Cmd {
	return clockCmd(m.controller.Session().Generation())
}

// Update handles messages.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case ClockTickMsg:
		return m.handleClockTick(msg)
	case ResolveMsg:
		return m.handleResolve(msg)
	}
	return m, nil
}

// handleClockTick advances the clock and re-arms the timer while the
// session it was scheduled for is still running.
func (m BoardModel) handleClockTick(msg ClockTickMsg) (tea.Model, tea.Cmd) {
	if m.controller.Session().TickClock(msg.Gen) {
		return m, clockCmd(msg.Gen)
	}
	return m, nil
}

// handleResolve compares the pending pair once the reveal delay is over.
func (m BoardModel) handleResolve(msg ResolveMsg) (tea.Model, tea.Cmd) {
	result := m.controller.Session().Resolve(msg.Gen)
	if result.Won {
		m.finalStats = m.controller.Session().Stats()
		m.phase = phaseNameEntry
		m.nameInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// handleKey processes keyboard input for the active phase.
func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseNameEntry:
		return m.handleNameKey(msg)
	case phaseResults:
		return m.handleResultsKey(msg)
	}
	return m.handleBoardKey(msg)
}

func (m BoardModel) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.controller.Session()
	tileCount := len(session.Snapshot().Tiles)
	cols := boardColumns(tileCount)

	switch m.keyMapper.MapKeyToBoardAction(msg) {
	case BoardActionQuit:
		m.quitting = true
		return m, tea.Quit

	case BoardActionBack:
		m.backToMenu = true
		return m, tea.Quit

	case BoardActionRestart:
		m.controller.Restart()
		m.cursor = 0
		return m, clockCmd(session.Generation())

	case BoardActionUp:
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}

	case BoardActionDown:
		if m.cursor+cols < tileCount {
			m.cursor += cols
		}

	case BoardActionLeft:
		if m.cursor%cols > 0 {
			m.cursor--
		}

	case BoardActionRight:
		if m.cursor%cols < cols-1 && m.cursor+1 < tileCount {
			m.cursor++
		}

	case BoardActionFlip:
		result := session.Flip(m.cursor)
		if result.NeedsResolve {
			return m, resolveCmd(session.RevealDelay(), result.Generation)
		}
	}

	return m, nil
}

func (m BoardModel) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		return m.finishWin(m.nameInput.Value())

	case "esc":
		// Skip the prompt; the win is recorded as anonymous.
		return m.finishWin("")
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// finishWin records the win and moves to the results screen. The session
// is redealt underneath; its clock stays parked until play resumes.
func (m BoardModel) finishWin(name string) (tea.Model, tea.Cmd) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = pairs.AnonymousName
	}

	ranked, err := m.controller.FinishWin(name)
	m.ranked = ranked
	m.saveErr = err
	m.rank = leaderboard.Rank(ranked, leaderboard.Entry{
		Name:           name,
		Moves:          m.finalStats.Moves,
		ElapsedSeconds: m.finalStats.ElapsedSeconds,
	})
	m.phase = phaseResults
	m.nameInput.Blur()
	return m, nil
}

func (m BoardModel) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "r" {
		return m.resumePlay()
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case MenuActionSelect:
		return m.resumePlay()
	}

	return m, nil
}

// resumePlay returns to the grid with the deal made at finishWin time.
func (m BoardModel) resumePlay() (tea.Model, tea.Cmd) {
	m.phase = phasePlaying
	m.cursor = 0
	m.nameInput.SetValue(m.username)
	return m, clockCmd(m.controller.Session().Generation())
}

// View renders the active phase.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseNameEntry:
		return m.viewNameEntry()
	case phaseResults:
		return m.viewResults()
	}
	return m.viewBoard()
}

func (m BoardModel) viewBoard() string {
	snap := m.controller.Session().Snapshot()
	styles := GetPairsTheme()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styles.Title.Render(centerText("P A I R S", m.width)))
	b.WriteString("\n")
	subtitle := fmt.Sprintf("%s - %s", snap.Theme, snap.Difficulty)
	b.WriteString(styles.Subtitle.Render(centerText(subtitle, m.width)))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid(snap, styles))

	b.WriteString("\n")
	hud := fmt.Sprintf("Moves: %d   Time: %s   Pairs: %d/%d",
		snap.Moves, formatClock(snap.ElapsedSeconds), snap.MatchedPairs, snap.PairCount)
	b.WriteString(styles.HUDLine.Render(centerText(hud, m.width)))
	b.WriteString("\n\n")

	controls := "Arrows: Move  |  Enter/Space: Flip  |  R: Restart  |  Esc: Back  |  Q: Quit"
	b.WriteString(styles.Controls.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// renderGrid draws the tiles as a centered grid, cursor marked with brackets.
func (m BoardModel) renderGrid(snap pairs.Snapshot, styles PairsTheme) string {
	if len(snap.Tiles) == 0 {
		return styles.EmptyNotice.Render(centerText("No tiles dealt.", m.width)) + "\n"
	}

	cols := boardColumns(len(snap.Tiles))
	rowWidth := cols * tileCellWidth
	pad := 0
	if m.width > rowWidth {
		pad = (m.width - rowWidth) / 2
	}

	var b strings.Builder
	for start := 0; start < len(snap.Tiles); start += cols {
		end := start + cols
		if end > len(snap.Tiles) {
			end = len(snap.Tiles)
		}

		b.WriteString(strings.Repeat(" ", pad))
		for _, t := range snap.Tiles[start:end] {
			b.WriteString(m.renderTile(t, styles))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderTile draws one fixed-width cell: backs for face-down tiles, the
// symbol for revealed ones.
func (m BoardModel) renderTile(t pairs.Tile, styles PairsTheme) string {
	face := "░░"
	style := styles.FaceDownTile
	switch {
	case t.Matched:
		face = padSymbol(t.Symbol)
		style = styles.MatchedTile
	case t.FaceUp:
		face = padSymbol(t.Symbol)
		style = styles.FaceUpTile
	}

	left, right := " ", " "
	if t.ID == m.cursor {
		left = styles.CursorMark.Render("[")
		right = styles.CursorMark.Render("]")
	}

	return left + style.Render(face) + right
}

func (m BoardModel) viewNameEntry() string {
	styles := GetPairsTheme()

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(styles.WinTitle.Render(centerText("Y O U   W I N !", m.width)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%d moves in %s", m.finalStats.Moves, formatClock(m.finalStats.ElapsedSeconds))
	b.WriteString(centerText(stats, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter your name for the scoreboard:", m.width))
	b.WriteString("\n\n")

	pad := (m.width - m.nameInput.Width) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")

	b.WriteString(styles.Controls.Render(centerText("Enter: Save  |  Esc: Skip", m.width)))

	return b.String()
}

func (m BoardModel) viewResults() string {
	styles := GetPairsTheme()

	var b strings.Builder

	b.WriteString("\n")
	themeID, difficulty := leaderboard.SplitKey(m.controller.Key())
	title := fmt.Sprintf("BEST SCORES - %s (%s)", themeID, difficulty)
	b.WriteString(styles.Title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.saveErr != nil {
		b.WriteString(styles.EmptyNotice.Render(centerText("(scores could not be saved)", m.width)))
		b.WriteString("\n\n")
	}

	if len(m.ranked) == 0 {
		b.WriteString(styles.EmptyNotice.Render(centerText("No scores recorded.", m.width)))
		b.WriteString("\n")
	}

	for i, e := range m.ranked {
		line := fmt.Sprintf("%d. %-16s %8s %4d moves", i+1, e.Name, formatClock(e.ElapsedSeconds), e.Moves)
		style := styles.ResultRow
		if i+1 == m.rank {
			style = styles.ResultHighlite
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	if m.rank == 0 && len(m.ranked) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Not in the top %d this time.", leaderboard.MaxEntries), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Controls.Render(centerText("Enter/R: Play Again  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m BoardModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the setup menu.
func (m BoardModel) BackToMenu() bool {
	return m.backToMenu
}

// boardColumns picks a grid width that keeps the board roughly square.
func boardColumns(tileCount int) int {
	switch {
	case tileCount <= 0:
		return 1
	case tileCount <= 16:
		return 4
	default:
		return 6
	}
}

// padSymbol widens single-cell symbols so every tile renders two cells wide.
func padSymbol(symbol string) string {
	if w := lipgloss.Width(symbol); w < 2 {
		return symbol + strings.Repeat(" ", 2-w)
	}
	return symbol
}

// formatClock renders elapsed seconds as mm:ss.
func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// RunBoard runs one play session in the local terminal. It returns true if
// the user wants to go back to the setup menu rather than quit.
func RunBoard(controller *pairs.Controller, width, height int) (backToMenu bool, err error) {
	model := NewBoardModel(controller, "", width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BoardModel)
	if !ok {
		return false, nil
	}

	return m.BackToMenu(), nil
}
