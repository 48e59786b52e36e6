package data

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FireModeKind enumerates trigger behaviors.
type FireModeKind uint8

const (
	SemiAuto FireModeKind = iota
	Burst
	FullAuto
)

// FireMode describes how a held trigger turns into shots. Burst is the shot
// count for burst mode and zero otherwise.
type FireMode struct {
	Kind  FireModeKind
	Burst int
}

// BurstOf returns a burst-n fire mode.
func BurstOf(n int) FireMode {
	return FireMode{Kind: Burst, Burst: n}
}

// String returns the table spelling: semi_auto, full_auto or burst-N.
func (m FireMode) String() string {
	switch m.Kind {
	case SemiAuto:
		return "semi_auto"
	case FullAuto:
		return "full_auto"
	case Burst:
		return "burst-" + strconv.Itoa(m.Burst)
	}
	return fmt.Sprintf("fire_mode(%d)", m.Kind)
}

// ParseFireMode parses the table spelling of a fire mode.
func ParseFireMode(s string) (FireMode, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "semi_auto", "semi":
		return FireMode{Kind: SemiAuto}, nil
	case "full_auto", "auto":
		return FireMode{Kind: FullAuto}, nil
	}
	if rest, ok := strings.CutPrefix(s, "burst-"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return FireMode{}, fmt.Errorf("%w: burst size %q", ErrInvalidValue, rest)
		}
		return BurstOf(n), nil
	}
	return FireMode{}, fmt.Errorf("%w: fire mode %q", ErrInvalidValue, s)
}

// UnmarshalYAML decodes a fire mode from its string form.
func (m *FireMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFireMode(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = parsed
	return nil
}

// MarshalYAML encodes a fire mode as its string form.
func (m FireMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalText decodes the string form for TOML tables.
func (m *FireMode) UnmarshalText(text []byte) error {
	parsed, err := ParseFireMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText lets JSON snapshots carry the readable form.
func (m FireMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
