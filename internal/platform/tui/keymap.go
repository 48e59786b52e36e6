package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ortho-arena/internal/core"
)

// holdWindow is how long a held action stays active after its last key
// event. Terminals report presses and repeats, never releases.
const holdWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to arena actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w":
		return core.ActionMoveUp, false
	case "s":
		return core.ActionMoveDown, false
	case "a":
		return core.ActionMoveLeft, false
	case "d":
		return core.ActionMoveRight, false
	case "up", "i":
		return core.ActionAimUp, false
	case "down", "k":
		return core.ActionAimDown, false
	case "left", "j":
		return core.ActionAimLeft, false
	case "right", "l":
		return core.ActionAimRight, false
	case " ":
		return core.ActionFire, false
	case "e", "f":
		return core.ActionInteract, false
	case "tab":
		return core.ActionToggleWeapon, false
	case "1":
		return core.ActionSelectPrimary, false
	case "2":
		return core.ActionSelectSecondary, false
	case "r":
		return core.ActionReload, false
	case "p":
		return core.ActionPause, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// Holdable reports whether an action is continuous (movement, aim, fire)
// rather than edge-triggered.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft, core.ActionMoveRight,
		core.ActionAimUp, core.ActionAimDown, core.ActionAimLeft, core.ActionAimRight,
		core.ActionFire:
		return true
	}
	return false
}

// HeldInput turns key events into per-tick input frames. Holdable actions
// stay active for holdWindow of simulation time after their last key event;
// the rest are delivered on the next frame only. Terminal auto-repeat of a
// one-shot key inside holdWindow counts as the same press.
type HeldInput struct {
	until   map[core.Action]time.Duration
	repeat  map[core.Action]time.Duration
	pending core.InputFrame
}

// NewHeldInput creates an empty input tracker.
func NewHeldInput() *HeldInput {
	return &HeldInput{
		until:   make(map[core.Action]time.Duration),
		repeat:  make(map[core.Action]time.Duration),
		pending: core.NewInputFrame(),
	}
}

// Press records an action at simulation time now.
func (h *HeldInput) Press(a core.Action, now time.Duration) {
	if a == core.ActionNone {
		return
	}
	if Holdable(a) {
		h.until[a] = now + holdWindow
		return
	}
	held := now < h.repeat[a]
	h.repeat[a] = now + holdWindow
	if !held {
		h.pending.Set(a)
	}
}

// Frame returns the actions active at now and consumes pending one-shots.
func (h *HeldInput) Frame(now time.Duration) core.InputFrame {
	f := core.NewInputFrame()
	for a, until := range h.until {
		if now < until {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for a, until := range h.repeat {
		if now >= until {
			delete(h.repeat, a)
		}
	}
	for a := range h.pending.Actions {
		f.Set(a)
	}
	h.pending.Clear()
	return f
}

// Release drops every held action.
func (h *HeldInput) Release() {
	clear(h.until)
	clear(h.repeat)
	h.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionHistory
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
	case "b", "esc":
		return MenuActionBack
	case "tab", "h":
		return MenuActionHistory
	}

	return MenuActionNone
}
