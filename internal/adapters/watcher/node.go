package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/advent/internal/adapters/logger"
	"go.trai.ch/advent/internal/core/ports"
)

// NodeID is the unique identifier for the input watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.InputWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.InputWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewWatcher(log, DefaultWindow), nil
		},
	})
}
