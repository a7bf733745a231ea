package puzzles

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/advent/internal/core/ports"
)

// NodeID is the unique identifier for the puzzle registry Graft node.
const NodeID graft.ID = "adapter.puzzles"

func init() {
	graft.Register(graft.Node[ports.PuzzleRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PuzzleRegistry, error) {
			registry, err := NewRegistry(Builtin()...)
			if err != nil {
				return nil, err
			}
			return registry, nil
		},
	})
}
