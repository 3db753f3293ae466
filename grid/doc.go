// Package grid models a warehouse floor as a rectangular grid of runes,
// the common representation every search strategy in this module walks.
//
// What:
//
//   - Grid wraps equal-length rows of runes parsed from text.
//   - '@' marks the single start cell, '+' marks one or more targets,
//     '#' marks walls. Any other rune is floor.
//   - Entering a floor cell costs the rune's code point (so '.' costs 46,
//     '9' costs 57). Leaving the grid costs InfCost.
//   - Coord and Move are small comparable values usable as map keys.
//
// Why:
//
//   - One read-only structure shared by breadth-first, depth-first,
//     uniform-cost and A* searches, so they can be compared on equal terms.
//   - Bounds are checked lazily: StepCost never fails, it returns the
//     InfCost sentinel, and callers filter with InBounds/Traversable.
//
// Complexity:
//
//   - Parse:                  O(W×H) time and memory.
//   - InBounds, StepCost, At: O(1).
//   - Locate, Targets:        O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       no rows, or rows with no cells.
//   - ErrNonRectangular:  rows of differing length.
//   - ErrMalformedGrid:   missing/duplicate start or missing target
//     (ErrEmptyGrid and ErrNonRectangular also match it via errors.Is).
//   - ErrSymbolNotFound:  Locate could not find the requested rune.
package grid
