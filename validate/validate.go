package validate

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/warehouse/grid"
)

// Sentinel errors for rejected solutions.
var (
	// ErrTimeout is returned when the path uses more turns than the budget.
	ErrTimeout = errors.New("validate: turn budget exceeded")
	// ErrOutOfBounds is returned when a move leaves the grid.
	ErrOutOfBounds = errors.New("validate: out of bounds")
	// ErrWall is returned when a move enters a wall.
	ErrWall = errors.New("validate: walked into a wall")
	// ErrNotArrived is returned when the moves run out before a target is reached.
	ErrNotArrived = errors.New("validate: target not reached")
)

// Option configures Check.
type Option func(*options)

type options struct {
	turnBudget int
	logger     logrus.FieldLogger
}

// WithTurnBudget caps the number of moves. n <= 0 keeps the default,
// the number of cells in the grid.
func WithTurnBudget(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.turnBudget = n
		}
	}
}

// WithLogger routes outcome messages to l. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// discard returns a logger that drops everything.
func discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Report describes a replayed solution.
type Report struct {
	// Success is true when a target was reached within the rules.
	Success bool
	// Turns is the number of moves replayed, including a rejected one.
	Turns int
	// Cost is the summed step cost of the cells entered on the grid.
	Cost grid.Cost
	// Final is the position after the last replayed move.
	Final grid.Coord
	// Path is the grid with every left cell replaced by the arrow of the
	// move taken from it; the start keeps its '@'.
	Path []string
}

// Check replays moves from g's start marker. For every move it checks,
// in order, the turn budget, the grid bounds, walls and arrival on any
// target cell. It returns as soon as a target is reached.
func Check(g *grid.Grid, moves []grid.Move, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrNotArrived)
	}
	o := options{turnBudget: g.Width * g.Height, logger: discard()}
	for _, opt := range opts {
		opt(&o)
	}

	trail := g.Clone()
	start := g.Start()
	rep := &Report{Final: start}
	lg := o.logger.WithField("turn_budget", o.turnBudget)

	fail := func(err error) (*Report, error) {
		rep.Path = trail.Rows()
		lg.WithFields(logrus.Fields{
			"turn": rep.Turns,
			"row":  rep.Final.Row,
			"col":  rep.Final.Col,
		}).Warn(err.Error())

		return rep, fmt.Errorf("%w at %v on turn %d", err, rep.Final, rep.Turns)
	}

	for _, m := range moves {
		rep.Turns++
		trail.Set(rep.Final, m.Symbol())
		rep.Final = grid.Apply(rep.Final, m)

		switch {
		case rep.Turns > o.turnBudget:
			return fail(ErrTimeout)
		case !g.InBounds(rep.Final):
			return fail(ErrOutOfBounds)
		case !g.Traversable(rep.Final):
			return fail(ErrWall)
		}
		rep.Cost += g.StepCost(rep.Final)

		if g.IsTarget(rep.Final) {
			trail.Set(start, grid.StartSymbol)
			rep.Success = true
			rep.Path = trail.Rows()
			lg.WithFields(logrus.Fields{"turns": rep.Turns, "cost": rep.Cost}).Info("success")

			return rep, nil
		}
	}

	return fail(ErrNotArrived)
}
