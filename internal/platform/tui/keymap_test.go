package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"w steers up", runeKey('w'), core.ActionUp, false},
		{"k steers up", runeKey('k'), core.ActionUp, false},
		{"up arrow steers up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s steers down", runeKey('s'), core.ActionDown, false},
		{"j steers down", runeKey('j'), core.ActionDown, false},
		{"down arrow steers down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"a steers left", runeKey('a'), core.ActionLeft, false},
		{"h steers left", runeKey('h'), core.ActionLeft, false},
		{"left arrow steers left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d steers right", runeKey('d'), core.ActionRight, false},
		{"l steers right", runeKey('l'), core.ActionRight, false},
		{"right arrow steers right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key does nothing", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected {
				t.Errorf("action = %v, want %v", action, tt.expected)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('d'), &frame); quit {
		t.Error("d should not be a quit request")
	}
	if !frame.Has(core.ActionRight) {
		t.Error("frame should record ActionRight")
	}

	if quit := km.MapKeyToFrame(runeKey('z'), &frame); quit {
		t.Error("unbound key should not be a quit request")
	}
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone must never be recorded")
	}

	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame); !quit {
		t.Error("ctrl+c should be a quit request")
	}
}
