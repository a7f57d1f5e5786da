package assert

import "testing"

// Without the mathdebug tag all three severities are no-ops; with it,
// Crit and Bad panic on a false condition. The test adapts to whichever
// build it runs under.
func TestSeverities(t *testing.T) {
	// A true condition never panics.
	Crit(true, "unreachable")
	Bad(true, "unreachable")
	Warn(true, "unreachable")

	defer func() {
		r := recover()
		if Enabled && r == nil {
			t.Fatal("Crit(false) should panic in debug builds")
		}
		if !Enabled && r != nil {
			t.Fatalf("Crit(false) should be a no-op in release builds, got panic %v", r)
		}
	}()
	Crit(false, "boom")
}

func TestWarnNeverPanics(t *testing.T) {
	Warn(false, "suspicious but survivable")
}
