package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pairs/internal/pairs"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

// Selection holds the user's choices from the setup menu.
type Selection struct {
	Difficulty pairs.Difficulty
	ThemeID    string
}

// SetupModel lets users choose a difficulty and a tile theme for the next
// round. Difficulty comes first, then the theme.
type SetupModel struct {
	difficulties  []pairs.Difficulty
	themes        []theme.Theme
	cursor        int
	themeCursor   int
	inThemeSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     Selection
	choosing      bool
	wantsScores   bool
	quitting      bool
	back          bool
}

// NewSetupModel creates a new setup model.
func NewSetupModel(width, height int) SetupModel {
	return SetupModel{
		difficulties: pairs.Difficulties(),
		themes:       theme.List(),
		cursor:       0,
		width:        width,
		height:       height,
		keyMapper:    NewKeyMapper(),
		choosing:     true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inThemeSelect {
		return m.handleThemeSelectKey(action)
	}
	return m.handleDifficultySelectKey(action)
}

func (m SetupModel) handleDifficultySelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.difficulties)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.difficulties) > 0 {
			m.inThemeSelect = true
			m.themeCursor = 0
		}
	case MenuActionScoreboard:
		m.wantsScores = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SetupModel) handleThemeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case MenuActionDown:
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
		}
	case MenuActionSelect:
		if len(m.themes) > 0 {
			m.choosing = false
			m.selection = Selection{
				Difficulty: m.difficulties[m.cursor],
				ThemeID:    m.themes[m.themeCursor].ID,
			}
			return m, tea.Quit
		}
	case MenuActionBack:
		m.inThemeSelect = false
	}

	return m, nil
}

// View renders the difficulty/theme selection.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inThemeSelect {
		return m.viewThemeSelect()
	}
	return m.viewDifficultySelect()
}

func (m SetupModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("P A I R S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, d := range m.difficulties {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s (%d pairs)", cursor, d, d.PairCount())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))

	return b.String()
}

func (m SetupModel) viewThemeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT THEME", m.width))
	b.WriteString("\n\n")

	for i, t := range m.themes {
		cursor := "  "
		if i == m.themeCursor {
			cursor = "> "
		}

		preview := t.Symbols
		if len(preview) > 4 {
			preview = preview[:4]
		}

		line := fmt.Sprintf("%s%-10s %s", cursor, t.Title, strings.Join(preview, " "))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m SetupModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m SetupModel) WantsScoreboard() bool {
	return m.wantsScores
}

// SetupResult holds the result of running the setup selector.
type SetupResult struct {
	Selection       *Selection
	WantsScoreboard bool
	Quit            bool
}

// RunSetupSelector runs the setup menu and returns the selection result.
func RunSetupSelector(width, height int) (SetupResult, error) {
	model := NewSetupModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{}, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return SetupResult{Quit: true}, nil
	}

	if m.WantsScoreboard() {
		return SetupResult{WantsScoreboard: true}, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return SetupResult{Quit: true}, nil
	}

	return SetupResult{Selection: m.Selected()}, nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
