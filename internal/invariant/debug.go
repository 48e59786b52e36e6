//go:build debug

package invariant

import "github.com/charmbracelet/log"

// Fatal reports whether violations panic.
const Fatal = true

func violate(_ *log.Logger, v Violation) {
	panic(v)
}
