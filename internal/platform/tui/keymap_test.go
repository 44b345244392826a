package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jly-arcade/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"j fires J", runes("j"), core.ActionFireJ, false},
		{"l fires LY", runes("l"), core.ActionFireLy, false},
		{"y fires LY", runes("y"), core.ActionFireLy, false},
		{"space repeats", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRepeat, false},
		{"left cycles back", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionCycleLeft, false},
		{"right cycles forward", tea.KeyMsg{Type: tea.KeyRight}, core.ActionCycleRight, false},
		{"p pauses", runes("p"), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", runes("r"), core.ActionRestart, false},
		{"q quits", runes("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runes("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, msg := range []tea.KeyMsg{runes("j"), runes("x"), runes("l"), runes("j")} {
		if km.MapKeyToFrame(msg, &frame) {
			t.Fatalf("%q reported quit", msg.String())
		}
	}

	expected := []core.Action{core.ActionFireJ, core.ActionFireLy, core.ActionFireJ}
	if frame.Len() != len(expected) {
		t.Fatalf("frame has %d actions, expected %d", frame.Len(), len(expected))
	}
	for i, a := range expected {
		if frame.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, frame.Actions[i], a)
		}
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	press := func(x int, button tea.MouseButton, action tea.MouseAction) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: 3, Button: button, Action: action}
	}

	tests := []struct {
		name     string
		msg      tea.MouseMsg
		expected core.Action
	}{
		{"left half", press(10, tea.MouseButtonLeft, tea.MouseActionPress), core.ActionTapLeft},
		{"right half", press(70, tea.MouseButtonLeft, tea.MouseActionPress), core.ActionTapRight},
		{"center goes right", press(40, tea.MouseButtonLeft, tea.MouseActionPress), core.ActionTapRight},
		{"release ignored", press(10, tea.MouseButtonLeft, tea.MouseActionRelease), core.ActionNone},
		{"motion ignored", press(10, tea.MouseButtonNone, tea.MouseActionMotion), core.ActionNone},
		{"right button ignored", press(10, tea.MouseButtonRight, tea.MouseActionPress), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapMouse(tc.msg, 80); got != tc.expected {
				t.Errorf("MapMouse() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tc := range tests {
		if got := tickInterval(tc.rate); got != tc.expected {
			t.Errorf("tickInterval(%d) = %v, expected %v", tc.rate, got, tc.expected)
		}
	}
}
