package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/advent/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the input hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ReaderNodeID is the unique identifier for the input reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.InputSource]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InputSource, error) {
			return NewReader(), nil
		},
	})
}
