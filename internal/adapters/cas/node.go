package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/advent/internal/core/ports"
)

// NodeID is the unique identifier for the answer store opener Graft node.
const NodeID graft.ID = "adapter.answer_store"

func init() {
	graft.Register(graft.Node[ports.AnswerStoreOpener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AnswerStoreOpener, error) {
			return NewOpener(), nil
		},
	})
}
