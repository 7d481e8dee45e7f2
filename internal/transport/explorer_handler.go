// Package transport exposes the node over gRPC and REST.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	wallet Wallet
}

func NewExplorerHandler(wallet Wallet) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{wallet: wallet}
}

// Health is healthy once the node has a handshaked peer and has caught up
// with its header chain.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	s := h.wallet.Status()
	switch {
	case s.Peers == 0:
		return nil, status.Error(codes.Unavailable, "no connected peers")
	case !s.Synced:
		return nil, status.Error(codes.Unavailable, fmt.Sprintf("syncing headers at height %d", s.Height))
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: fmt.Sprintf("height %d, %d peers", s.Height, s.Peers),
	}, nil
}
