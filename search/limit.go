package search

// RecursionLimit is a scoped override of an Engine's recursion budget.
// The previous budget is put back by Restore, which is meant to be deferred
// so it runs on every exit path:
//
//	defer e.RaiseRecursionLimit(5000).Restore()
type RecursionLimit struct {
	engine   *Engine
	previous int
	restored bool
}

// RaiseRecursionLimit sets the recursion budget of recursive DepthFirst
// searches run by e to n until Restore is called. Values below 1 are
// clamped to 1. Overrides nest: each Restore returns to the value in force
// when its own override was taken.
func (e *Engine) RaiseRecursionLimit(n int) *RecursionLimit {
	if n < 1 {
		n = 1
	}
	l := &RecursionLimit{engine: e, previous: e.opts.RecursionLimit}
	e.opts.RecursionLimit = n

	return l
}

// Restore reinstates the budget that was in force before the override.
// Calling it more than once has no further effect.
func (l *RecursionLimit) Restore() {
	if l.restored {
		return
	}
	l.engine.opts.RecursionLimit = l.previous
	l.restored = true
}

// RecursionBudget returns the recursion limit currently in force.
func (e *Engine) RecursionBudget() int {
	return e.opts.RecursionLimit
}
