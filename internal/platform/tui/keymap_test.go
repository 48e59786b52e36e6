package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ortho-arena/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"move up", runeKey('w'), core.ActionMoveUp, false},
		{"move right", runeKey('d'), core.ActionMoveRight, false},
		{"aim arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAimLeft, false},
		{"fire", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"interact", runeKey('e'), core.ActionInteract, false},
		{"toggle", tea.KeyMsg{Type: tea.KeyTab}, core.ActionToggleWeapon, false},
		{"select secondary", runeKey('2'), core.ActionSelectSecondary, false},
		{"reload", runeKey('r'), core.ActionReload, false},
		{"quit", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHeldInputKeepsHoldableActionsForWindow(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionFire, 0)

	if f := h.Frame(0); !f.Has(core.ActionFire) {
		t.Error("fire should be active right after the press")
	}
	if f := h.Frame(holdWindow - time.Millisecond); !f.Has(core.ActionFire) {
		t.Error("fire should stay active inside the hold window")
	}
	if f := h.Frame(holdWindow); f.Has(core.ActionFire) {
		t.Error("fire should be released after the hold window")
	}
}

func TestHeldInputOneShotActionsLastOneFrame(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionInteract, 0)
	h.Press(core.ActionNone, 0)

	if f := h.Frame(0); !f.Has(core.ActionInteract) || f.Has(core.ActionNone) {
		t.Errorf("first frame = %v", f.Actions)
	}
	if f := h.Frame(time.Millisecond); f.Has(core.ActionInteract) {
		t.Error("interact must not repeat on the next frame")
	}
}

func TestHeldInputAutoRepeatedOneShots(t *testing.T) {
	tick := time.Second / 60
	tests := []struct {
		name   string
		action core.Action
		every  int // ticks between key events
		ticks  int
		expect int
	}{
		{"interact held down", core.ActionInteract, 2, 30, 1},
		{"toggle held down", core.ActionToggleWeapon, 2, 30, 1},
		{"reload held down", core.ActionReload, 1, 60, 1},
		{"select released between presses", core.ActionSelectPrimary, 20, 60, 3},
	}

	for _, tt := range tests {
		h := NewHeldInput()
		got := 0
		for i := 0; i < tt.ticks; i++ {
			now := time.Duration(i) * tick
			if i%tt.every == 0 {
				h.Press(tt.action, now)
			}
			if h.Frame(now).Has(tt.action) {
				got++
			}
		}
		if got != tt.expect {
			t.Errorf("%s: action delivered %d times, expected %d", tt.name, got, tt.expect)
		}
	}
}

func TestHeldInputRelease(t *testing.T) {
	h := NewHeldInput()
	h.Press(core.ActionMoveUp, 0)
	h.Press(core.ActionReload, 0)
	h.Release()
	if f := h.Frame(0); len(f.Actions) != 0 {
		t.Errorf("expected empty frame after release, got %v", f.Actions)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	if a := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); a != MenuActionSelect {
		t.Errorf("enter = %v, expected select", a)
	}
	if a := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); a != MenuActionHistory {
		t.Errorf("tab = %v, expected history", a)
	}
	if a := km.MapKeyToMenuAction(runeKey('j')); a != MenuActionDown {
		t.Errorf("j = %v, expected down", a)
	}
}
