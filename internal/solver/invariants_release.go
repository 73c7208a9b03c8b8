//go:build !debug

package solver

// checkInvariant is a no-op in release builds (§7): the engine is trusted,
// and the branch the debug build would verify never gets evaluated.
func (s *Solver) checkInvariant(cond bool, reason string) {}
