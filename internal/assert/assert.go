// Package assert implements the debug-only precondition checks used by the
// math types. Three severities mirror how badly a violated condition ends:
// Crit would touch invalid memory, Bad yields mathematically wrong results,
// Warn is merely suspicious input. All three compile to no-ops unless the
// binary is built with -tags mathdebug; Enabled is a constant, so the
// checks fold away entirely in normal builds.
package assert

import "log"

// Crit halts immediately in debug builds. Reserved for conditions where
// continuing would alias or index invalid memory.
func Crit(cond bool, msg string) {
	if Enabled && !cond {
		panic("gfxmath: critical: " + msg)
	}
}

// Bad reports a broken contract (e.g. a non-normalized rotation axis).
// Release builds continue and silently compute incorrect results.
func Bad(cond bool, msg string) {
	if Enabled && !cond {
		panic("gfxmath: contract: " + msg)
	}
}

// Warn flags suspicious but survivable input (zero scale, zero divisor).
// The computation proceeds in every build.
func Warn(cond bool, msg string) {
	if Enabled && !cond {
		log.Printf("gfxmath: warning: %s", msg)
	}
}
