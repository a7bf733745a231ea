package puzzles

import (
	"slices"

	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PuzzleRegistry = (*Registry)(nil)

// Registry implements ports.PuzzleRegistry over a fixed set of puzzles.
type Registry struct {
	byID    map[domain.PuzzleID]ports.Puzzle
	ordered []ports.Puzzle
}

// NewRegistry creates a registry of puzzles. Two puzzles with the same ID are an error.
func NewRegistry(puzzles ...ports.Puzzle) (*Registry, error) {
	r := &Registry{byID: make(map[domain.PuzzleID]ports.Puzzle, len(puzzles))}
	for _, p := range puzzles {
		id := p.ID()
		if _, dup := r.byID[id]; dup {
			return nil, zerr.With(zerr.With(zerr.New("duplicate puzzle"), "day", id.Day), "part", id.Part)
		}
		r.byID[id] = p
		r.ordered = append(r.ordered, p)
	}
	slices.SortFunc(r.ordered, func(a, b ports.Puzzle) int {
		switch {
		case a.ID().Less(b.ID()):
			return -1
		case b.ID().Less(a.ID()):
			return 1
		default:
			return 0
		}
	})
	return r, nil
}

// Builtin returns every puzzle solved in this repository.
func Builtin() []ports.Puzzle {
	return []ports.Puzzle{
		New(domain.PuzzleID{Day: 1, Part: 1}, "Report Repair", ReportRepairPair),
		New(domain.PuzzleID{Day: 1, Part: 2}, "Report Repair", ReportRepairTriple),
		New(domain.PuzzleID{Day: 7, Part: 1}, "Handy Haversacks", HandyHaversacksContainers),
		New(domain.PuzzleID{Day: 7, Part: 2}, "Handy Haversacks", HandyHaversacksContents),
		New(domain.PuzzleID{Day: 10, Part: 1}, "Adapter Array", AdapterArrayGaps),
		New(domain.PuzzleID{Day: 10, Part: 2}, "Adapter Array", AdapterArrayArrangements),
	}
}

// Lookup returns the puzzle for id.
func (r *Registry) Lookup(id domain.PuzzleID) (ports.Puzzle, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownPuzzle, "failed to find puzzle"), "day", id.Day), "part", id.Part)
	}
	return p, nil
}

// All returns every puzzle ordered by day and part.
func (r *Registry) All() []ports.Puzzle {
	return slices.Clone(r.ordered)
}
