package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to board and menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// BoardAction represents an in-game action derived from input.
type BoardAction int

const (
	BoardActionNone BoardAction = iota
	BoardActionUp
	BoardActionDown
	BoardActionLeft
	BoardActionRight
	BoardActionFlip
	BoardActionRestart
	BoardActionBack
	BoardActionQuit
)

// MapKeyToBoardAction translates a key to a board action.
func (km *KeyMapper) MapKeyToBoardAction(msg tea.KeyMsg) BoardAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return BoardActionQuit
	case "w", "up", "k": // vim-style k for up
		return BoardActionUp
	case "s", "down", "j": // vim-style j for down
		return BoardActionDown
	case "a", "left", "h":
		return BoardActionLeft
	case "d", "right", "l":
		return BoardActionRight
	case "enter", " ":
		return BoardActionFlip
	case "r":
		return BoardActionRestart
	case "b", "esc":
		return BoardActionBack
	}

	return BoardActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
