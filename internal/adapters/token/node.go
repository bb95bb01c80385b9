package token

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/filedep/internal/core/ports"
)

// NodeID is the unique identifier for the change token Graft node.
const NodeID graft.ID = "adapter.change_token"

func init() {
	graft.Register(graft.Node[ports.ChangeTokenSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ChangeTokenSource, error) {
			return NewGenerator(), nil
		},
	})
}
