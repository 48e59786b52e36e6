//go:build !debug

package invariant

import "github.com/charmbracelet/log"

// Fatal reports whether violations panic.
const Fatal = false

func violate(logger *log.Logger, v Violation) {
	if logger == nil {
		logger = log.Default()
	}
	logger.Warn("invariant violated", append([]any{"what", v.What}, v.Fields...)...)
}
