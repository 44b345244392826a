package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jly-arcade/internal/core"
)

// GameKeyMap defines the in-game key bindings.
// Bindings double as the help line shown under the playfield.
type GameKeyMap struct {
	FireJ      key.Binding
	FireLy     key.Binding
	Repeat     key.Binding
	CycleLeft  key.Binding
	CycleRight key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FireJ, k.FireLy, k.Repeat, k.CycleLeft, k.CycleRight, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FireJ, k.FireLy, k.Repeat},
		{k.CycleLeft, k.CycleRight},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		FireJ: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "fire J"),
		),
		FireLy: key.NewBinding(
			key.WithKeys("l", "y"),
			key.WithHelp("l", "fire LY"),
		),
		Repeat: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "repeat"),
		),
		CycleLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←", "prev target"),
		),
		CycleRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→", "next target"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.FireJ):
		return core.ActionFireJ, false
	case key.Matches(msg, km.keys.FireLy):
		return core.ActionFireLy, false
	case key.Matches(msg, km.keys.Repeat):
		return core.ActionRepeat, false
	case key.Matches(msg, km.keys.CycleLeft):
		return core.ActionCycleLeft, false
	case key.Matches(msg, km.keys.CycleRight):
		return core.ActionCycleRight, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse turns a left click into a tap on one half of the screen.
// The left half fires J, the right half fires LY.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, width int) core.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.ActionNone
	}
	if msg.X < width/2 {
		return core.ActionTapLeft
	}
	return core.ActionTapRight
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
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
