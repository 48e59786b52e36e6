// Package invariant guards conditions that only a logic defect can break.
// Builds with the debug tag panic on a violation; release builds log a
// warning and let the caller clamp.
package invariant

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Violation describes a broken invariant.
type Violation struct {
	What   string
	Fields []any
}

func (v Violation) Error() string {
	return fmt.Sprintf("invariant violated: %s %v", v.What, v.Fields)
}

// Check reports a violation when ok is false and returns ok. In release
// builds the caller clamps the offending value after a false result. A nil
// logger means the charm default logger.
func Check(logger *log.Logger, ok bool, what string, keyvals ...any) bool {
	if ok {
		return true
	}
	violate(logger, Violation{What: what, Fields: keyvals})
	return false
}

// NonNegative clamps n to zero, reporting a violation when it was negative.
func NonNegative(logger *log.Logger, n int, what string) int {
	if n >= 0 {
		return n
	}
	violate(logger, Violation{What: what, Fields: []any{"value", n}})
	return 0
}
