package syncer

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

// tip is the hash and height new headers must connect to. Without a local
// chain that is the genesis checkpoint. Callers hold e.mu.
func (e *Engine) tip() (chainhash.Hash, uint32) {
	if e.lastBlock != nil {
		return e.lastBlock.BlockHash(), e.lastBlock.Height
	}
	return e.params.Checkpoints[0].Hash, e.params.Checkpoints[0].Height
}

func (e *Engine) setTip(h model.BlockHeader) {
	e.lastBlock = &h
	e.metrics.ChainHeight(h.Height)
}

func (e *Engine) locator() []chainhash.Hash {
	if e.lastBlock == nil {
		return []chainhash.Hash{{}}
	}
	return []chainhash.Hash{e.lastBlock.BlockHash()}
}

func (e *Engine) handshake(p Peer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := e.ctx
	remote := p.RemoteHeight()
	logger := e.logger.With(zap.String("peer", p.Addr()), zap.Uint32("remote_height", remote))

	if e.lastBlock != nil && e.lastBlock.Height > remote+e.cfg.StaleBlocks {
		logger.Info("dropping stale peer", zap.Uint32("height", e.lastBlock.Height))
		p.Disconnect(fmt.Errorf("%w: remote %d, local %d", ErrStalePeer, remote, e.lastBlock.Height))
		return
	}

	if !e.lastCheckedSet {
		start := remote
		if e.cfg.BirthdayHeight > 0 {
			start = e.cfg.BirthdayHeight - 1
		}
		if err := e.repo.SetLastCheckedHeight(ctx, start); err != nil {
			logger.Error("persist sync cursor", zap.Error(err))
			p.Disconnect(fmt.Errorf("persist sync cursor: %w", err))
			return
		}
		e.lastChecked, e.lastCheckedSet, e.requested = start, true, start
		logger.Info("wallet scan starts", zap.Uint32("after_height", start))
	}
	e.peers[p] = struct{}{}

	if e.lastBlock != nil && e.lastBlock.Height >= remote {
		e.caughtUp(ctx, p)
		return
	}
	logger.Info("requesting headers")
	p.SendGetHeaders(e.locator())
}

// headers validates a whole batch before persisting any of it.
func (e *Engine) headers(p Peer, headers []wire.BlockHeader) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := e.ctx
	logger := e.logger.With(zap.String("peer", p.Addr()))
	if len(headers) == 0 {
		e.caughtUp(ctx, p)
		return
	}

	tipHash, tipHeight := e.tip()
	next := e.nextCheckpoint
	accepted := make([]model.BlockHeader, 0, len(headers))
	for _, h := range headers {
		height, n, err := e.connectable(tipHash, tipHeight, next, h)
		if err != nil {
			logger.Warn("rejecting headers", zap.Error(err))
			p.Disconnect(err)
			return
		}
		accepted = append(accepted, model.BlockHeader{BlockHeader: h, Height: height})
		tipHash, tipHeight, next = h.BlockHash(), height, n
	}

	for _, h := range accepted {
		if err := e.repo.AddBlockHeader(ctx, h); err != nil {
			logger.Error("store header", zap.Uint32("height", h.Height), zap.Error(err))
			p.Disconnect(fmt.Errorf("store header %d: %w", h.Height, err))
			return
		}
		e.setTip(h)
	}
	e.nextCheckpoint = next
	e.metrics.HeadersIngested(len(accepted))
	logger.Debug("headers stored", zap.Int("count", len(accepted)), zap.Uint32("height", tipHeight))

	if p.RemoteHeight() > tipHeight {
		p.SendGetHeaders([]chainhash.Hash{tipHash})
		return
	}
	e.caughtUp(ctx, p)
}

// connectable checks h against the tip and the next checkpoint and returns
// its height and the advanced checkpoint index.
func (e *Engine) connectable(tipHash chainhash.Hash, tipHeight uint32, next int, h wire.BlockHeader) (uint32, int, error) {
	hash := h.BlockHash()
	if h.PrevBlock != tipHash {
		return 0, next, fmt.Errorf("%w: %s has prev %s, tip %s at %d",
			ErrChainMismatch, hash, h.PrevBlock, tipHash, tipHeight)
	}
	if e.checkWork != nil {
		if err := e.checkWork(&h); err != nil {
			return 0, next, fmt.Errorf("header %s: %w", hash, err)
		}
	}
	height := tipHeight + 1
	checkpoints := e.params.Checkpoints
	if next < len(checkpoints) && checkpoints[next].Height == height {
		if checkpoints[next].Hash != hash {
			return 0, next, fmt.Errorf("%w: height %d got %s want %s",
				ErrCheckpointMismatch, height, hash, checkpoints[next].Hash)
		}
		next++
	}
	return height, next, nil
}

func (e *Engine) caughtUp(ctx context.Context, p Peer) {
	if !e.synced {
		_, height := e.tip()
		e.logger.Info("header sync complete", zap.Uint32("height", height))
	}
	e.synced = true
	p.SendFilterLoad(e.buildFilter())
	e.requestBlocks(ctx, p)
	e.announcePending(p)
}

// requestBlocks queues the next window of filtered blocks after everything
// already checked or requested.
func (e *Engine) requestBlocks(ctx context.Context, p Peer) {
	if e.requests == nil {
		return
	}
	from := max(e.lastChecked, e.requested) + 1
	hashes, err := e.repo.BlockHashesFrom(ctx, from, e.cfg.MaxBlocksInFlight)
	if err != nil {
		e.logger.Error("load block hashes", zap.Uint32("from", from), zap.Error(err))
		return
	}
	if len(hashes) == 0 {
		return
	}
	for _, h := range hashes {
		if err := e.requests.Add(ctx, BlockRequest{Peer: p, Hash: h}); err != nil {
			e.logger.Warn("queue block request", zap.Error(err))
			return
		}
	}
	e.requested = from + uint32(len(hashes)) - 1
	e.logger.Debug("filtered blocks requested",
		zap.String("peer", p.Addr()),
		zap.Uint32("from", from),
		zap.Uint32("to", e.requested))
}
