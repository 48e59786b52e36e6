package core

// Action represents a semantic input action, abstracted from physical key presses.
// The platform layer produces actions; the simulation only ever sees an Intent.
type Action int

const (
	ActionNone            Action = iota
	ActionMoveUp                 // W - move north (-Z)
	ActionMoveDown               // S - move south (+Z)
	ActionMoveLeft               // A - move west (-X)
	ActionMoveRight              // D - move east (+X)
	ActionAimUp                  // I, Up arrow
	ActionAimDown                // K, Down arrow
	ActionAimLeft                // J, Left arrow
	ActionAimRight               // L, Right arrow
	ActionFire                   // Space - fire held
	ActionInteract               // E - pick up
	ActionToggleWeapon           // Tab - swap primary/secondary
	ActionSelectPrimary          // 1
	ActionSelectSecondary        // 2
	ActionReload                 // R
	ActionPause                  // P
	ActionBack                   // B, Escape
	ActionQuit                   // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionFire:
		return "Fire"
	case ActionInteract:
		return "Interact"
	case ActionToggleWeapon:
		return "ToggleWeapon"
	case ActionSelectPrimary:
		return "SelectPrimary"
	case ActionSelectSecondary:
		return "SelectSecondary"
	case ActionReload:
		return "Reload"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the raw actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Slot identifies one of the two fixed weapon-holding positions of a loadout.
type Slot int

const (
	SlotPrimary Slot = iota
	SlotSecondary
)

// Other returns the opposite slot.
func (s Slot) Other() Slot {
	if s == SlotPrimary {
		return SlotSecondary
	}
	return SlotPrimary
}

// Valid reports whether s names one of the two slots.
func (s Slot) Valid() bool {
	return s == SlotPrimary || s == SlotSecondary
}

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotPrimary:
		return "primary"
	case SlotSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Intent is the normalized, per-tick player intent consumed by the simulation.
// Discrete fields (Interact, ToggleWeapon, Reload, SelectSlot) are
// edge-triggered: they are true only on the tick the action was issued.
type Intent struct {
	Move         Vec2  // X = east, Y = south; normalized or zero
	Aim          Vec3  // aim direction on the XZ plane; zero keeps the last facing
	Firing       bool  // fire input is held this tick
	Interact     bool  // pick up whatever the player overlaps
	ToggleWeapon bool  // swap selected slot
	Reload       bool  // resupply selected magazine from ammo stacks
	SelectSlot   *Slot // explicit slot selection, nil if none
}

// Normalize converts a raw input frame into an Intent. aim is the
// collaborator's current facing; it is passed through normalized.
func Normalize(f InputFrame, aim Vec3) Intent {
	var move Vec2
	if f.Has(ActionMoveUp) {
		move.Y -= 1
	}
	if f.Has(ActionMoveDown) {
		move.Y += 1
	}
	if f.Has(ActionMoveLeft) {
		move.X -= 1
	}
	if f.Has(ActionMoveRight) {
		move.X += 1
	}

	in := Intent{
		Move:         move.NormalizeOrZero(),
		Aim:          Vec3{X: aim.X, Z: aim.Z}.NormalizeOrZero(),
		Firing:       f.Has(ActionFire),
		Interact:     f.Has(ActionInteract),
		ToggleWeapon: f.Has(ActionToggleWeapon),
		Reload:       f.Has(ActionReload),
	}

	// Explicit select wins over nothing; primary wins if both were pressed.
	switch {
	case f.Has(ActionSelectPrimary):
		s := SlotPrimary
		in.SelectSlot = &s
	case f.Has(ActionSelectSecondary):
		s := SlotSecondary
		in.SelectSlot = &s
	}

	return in
}

// AimFromFrame updates a facing vector from the aim actions in f. If no aim
// action is present the previous facing is returned unchanged.
func AimFromFrame(f InputFrame, facing Vec3) Vec3 {
	var aim Vec3
	if f.Has(ActionAimUp) {
		aim.Z -= 1
	}
	if f.Has(ActionAimDown) {
		aim.Z += 1
	}
	if f.Has(ActionAimLeft) {
		aim.X -= 1
	}
	if f.Has(ActionAimRight) {
		aim.X += 1
	}
	if aim.IsZero() {
		return facing
	}
	return aim.NormalizeOrZero()
}
