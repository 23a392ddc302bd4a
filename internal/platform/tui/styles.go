package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// PairsTheme contains all configurable visual styles for the game screens.
type PairsTheme struct {
	// Tile cell styles
	FaceDownTile lipgloss.Style
	FaceUpTile   lipgloss.Style
	MatchedTile  lipgloss.Style
	CursorMark   lipgloss.Style

	// Header styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// HUD styles
	HUDLine  lipgloss.Style
	Controls lipgloss.Style

	// Win and results styles
	WinTitle       lipgloss.Style
	ResultRow      lipgloss.Style
	ResultHighlite lipgloss.Style
	EmptyNotice    lipgloss.Style
}

// DefaultPairsTheme returns the default visual theme.
func DefaultPairsTheme() PairsTheme {
	return PairsTheme{
		FaceDownTile: lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Dim gray backs
		FaceUpTile:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		MatchedTile:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")), // Muted green
		CursorMark:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		HUDLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Controls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		WinTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ResultRow:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ResultHighlite: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(true),
		EmptyNotice:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// MonochromePairsTheme returns a grayscale theme for limited terminals.
func MonochromePairsTheme() PairsTheme {
	theme := DefaultPairsTheme()
	theme.FaceUpTile = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.MatchedTile = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.CursorMark = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.WinTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.ResultHighlite = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("250")).Bold(true)
	return theme
}

// Global theme variable (can be changed at runtime)
var pairsTheme = DefaultPairsTheme()

// SetPairsTheme sets the global theme.
func SetPairsTheme(theme PairsTheme) {
	pairsTheme = theme
}

// GetPairsTheme returns the current global theme.
func GetPairsTheme() PairsTheme {
	return pairsTheme
}
