package syncer

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/bloom"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/merkle"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/script"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
	"github.com/goodnatureofminers/blockinsight7000-spv/pkg/safe"
)

const (
	merkleAccepted = "accepted"
	merkleUnplaced = "unplaced"
	merkleRejected = "rejected"
	merkleError    = "error"
)

// buildFilter matches our public keys (spends) and their hashes (P2PKH outputs).
func (e *Engine) buildFilter() *bloom.Filter {
	f := bloom.New(2*len(e.pubKeys), e.cfg.FalsePositiveRate, e.tweak)
	for i := range e.pubKeys {
		f.Insert(e.pubKeys[i])
		f.Insert(e.watched[i])
	}
	return f
}

func (e *Engine) watches(pubKeyHash []byte) bool {
	for _, h := range e.watched {
		if bytes.Equal(h, pubKeyHash) {
			return true
		}
	}
	return false
}

// blockGroup is a filtered block whose matched transactions have not all been
// ingested yet. The block only counts as checked once pending is empty.
type blockGroup struct {
	peer    Peer
	hash    chainhash.Hash
	height  uint32
	pending map[chainhash.Hash]struct{}
	retried bool
	// awaiting is set between asking for the block again and its arrival.
	awaiting bool
}

// merkleBlock places a verified filtered block in the chain. A block on top
// of the tip extends the chain the same way a header would.
func (e *Engine) merkleBlock(p Peer, mb *wire.MsgMerkleBlock) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := e.ctx
	hash := mb.BlockHash()
	logger := e.logger.With(zap.String("peer", p.Addr()), zap.Stringer("block", hash))

	matched, err := merkle.ExtractMatches(mb)
	if err != nil {
		logger.Warn("dropping malformed merkle block", zap.Error(err))
		e.metrics.MerkleBlock(merkleRejected)
		return
	}

	height, ok, err := e.repo.BlockHeight(ctx, hash)
	if err != nil {
		logger.Error("lookup block height", zap.Error(err))
		e.metrics.MerkleBlock(merkleError)
		return
	}
	if !ok {
		tipHash, tipHeight := e.tip()
		if mb.Header.PrevBlock != tipHash {
			logger.Warn("merkle block does not connect to the known chain")
			e.metrics.MerkleBlock(merkleUnplaced)
			return
		}
		h, next, err := e.connectable(tipHash, tipHeight, e.nextCheckpoint, mb.Header)
		if err != nil {
			logger.Warn("rejecting merkle block", zap.Error(err))
			e.metrics.MerkleBlock(merkleRejected)
			p.Disconnect(err)
			return
		}
		header := model.BlockHeader{BlockHeader: mb.Header, Height: h}
		if err := e.repo.AddBlockHeader(ctx, header); err != nil {
			logger.Error("store header", zap.Error(err))
			e.metrics.MerkleBlock(merkleError)
			return
		}
		e.setTip(header)
		e.nextCheckpoint = next
		height = h
		logger.Info("chain extended", zap.Uint32("height", h))
	}
	e.metrics.MerkleBlock(merkleAccepted)

	if height == max(e.lastChecked, e.requested)+1 {
		e.requested = height
	}
	e.trackBlock(ctx, p, hash, height, matched)
	if height >= e.requested {
		e.requestBlocks(ctx, p)
	}
}

// trackBlock waits for the matched transactions of a block before it counts
// as checked. A peer sends every matched transaction right after its merkle
// block, so groups of p still open when the next block arrives lost a
// transaction on the way and are asked for once more.
func (e *Engine) trackBlock(ctx context.Context, p Peer, hash chainhash.Hash, height uint32, matched []chainhash.Hash) {
	var stalled []*blockGroup
	for h, g := range e.inflight {
		if g.peer != p || h == hash || g.awaiting {
			continue
		}
		if g.retried {
			delete(e.inflight, h)
			e.logger.Warn("block still incomplete after retry, left for the next scan",
				zap.String("peer", p.Addr()),
				zap.Stringer("block", h),
				zap.Int("missing", len(g.pending)))
			continue
		}
		stalled = append(stalled, g)
	}
	if len(stalled) > 0 {
		sort.Slice(stalled, func(i, j int) bool { return stalled[i].height < stalled[j].height })
		items := make([]wire.InvVect, 0, len(stalled))
		for _, g := range stalled {
			g.retried, g.awaiting, g.pending = true, true, nil
			items = append(items, wire.InvVect{Type: wire.InvTypeFilteredBlock, Hash: g.hash})
		}
		p.SendGetData(items)
		e.logger.Info("requesting incomplete blocks again", zap.String("peer", p.Addr()), zap.Int("blocks", len(items)))
	}

	g := &blockGroup{peer: p, hash: hash, height: height, pending: make(map[chainhash.Hash]struct{}, len(matched))}
	if prev, ok := e.inflight[hash]; ok {
		g.retried = prev.retried
	}
	for _, txID := range matched {
		g.pending[txID] = struct{}{}
	}
	if len(g.pending) == 0 {
		delete(e.inflight, hash)
		e.completeBlock(ctx, height)
		return
	}
	e.inflight[hash] = g
}

// completeBlock marks height as checked and moves the persisted cursor over
// every contiguous checked height above it.
func (e *Engine) completeBlock(ctx context.Context, height uint32) {
	if height <= e.lastChecked {
		return
	}
	e.checked[height] = struct{}{}
	next := e.lastChecked
	for {
		if _, ok := e.checked[next+1]; !ok {
			break
		}
		next++
	}
	if next == e.lastChecked {
		return
	}
	if err := e.repo.SetLastCheckedHeight(ctx, next); err != nil {
		e.logger.Error("persist sync cursor", zap.Uint32("height", next), zap.Error(err))
		return
	}
	for h := e.lastChecked + 1; h <= next; h++ {
		delete(e.checked, h)
	}
	e.lastChecked = next
}

// groupOf finds the open block of p waiting for txID.
func (e *Engine) groupOf(p Peer, txID chainhash.Hash) *blockGroup {
	for _, g := range e.inflight {
		if g.peer != p {
			continue
		}
		if _, ok := g.pending[txID]; ok {
			return g
		}
	}
	return nil
}

// transaction ingests tx at the height of mb, or unconfirmed when mb is nil
// and no open block of p is waiting for it. Transactions of a block that
// could not be placed are skipped.
func (e *Engine) transaction(p Peer, tx *wire.MsgTx, mb *wire.MsgMerkleBlock) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := e.ctx
	txID := tx.TxHash()
	height := model.UnknownHeight
	var g *blockGroup
	switch {
	case mb != nil:
		g = e.inflight[mb.BlockHash()]
		if g != nil {
			height = g.height
			break
		}
		h, ok, err := e.repo.BlockHeight(ctx, mb.BlockHash())
		if err != nil {
			e.logger.Error("lookup block height", zap.Error(err))
			return
		}
		if !ok {
			e.logger.Debug("skipping transaction of unplaced block",
				zap.String("peer", p.Addr()),
				zap.Stringer("txid", txID))
			return
		}
		height = h
	default:
		if g = e.groupOf(p, txID); g != nil {
			height = g.height
		}
	}
	if err := e.ingest(ctx, tx, height); err != nil {
		e.logger.Error("ingest transaction", zap.Stringer("txid", txID), zap.Error(err))
		return
	}
	if g == nil {
		return
	}
	if _, ok := g.pending[txID]; !ok {
		return
	}
	delete(g.pending, txID)
	if len(g.pending) == 0 {
		delete(e.inflight, g.hash)
		e.completeBlock(ctx, g.height)
	}
}

// ingest applies tx to the wallet. A new relevant transaction removes the
// outputs it spends, adds the outputs paying a watched key and records a
// payment; a known one is only confirmed.
func (e *Engine) ingest(ctx context.Context, tx *wire.MsgTx, height uint32) error {
	txID := tx.TxHash()
	knownHeight, known, err := e.repo.PaymentHeight(ctx, txID)
	if err != nil {
		return fmt.Errorf("lookup payment: %w", err)
	}
	logger := e.logger.With(zap.Stringer("txid", txID))
	// Outputs of a known payment were recorded when it was first seen and may
	// have been spent since; only its height can change.
	if known {
		if height != model.UnknownHeight && knownHeight != height {
			if err := e.repo.UpdatePaymentHeight(ctx, txID, height); err != nil {
				return fmt.Errorf("confirm payment: %w", err)
			}
			logger.Info("payment confirmed", zap.Uint32("height", height))
		}
		return nil
	}

	var spent, received uint64
	relevant := false
	for _, in := range tx.TxIn {
		u, ok, err := e.repo.DeleteUTXO(ctx, in.PreviousOutPoint)
		if err != nil {
			return fmt.Errorf("delete utxo %s: %w", in.PreviousOutPoint, err)
		}
		if ok {
			spent += u.Value
			relevant = true
			delete(e.reserved, in.PreviousOutPoint)
		}
	}
	for i, out := range tx.TxOut {
		tpl := script.Classify(out.PkScript)
		if tpl.Kind != script.P2PKH || !e.watches(tpl.Hash) {
			continue
		}
		index, err := safe.Uint32(i)
		if err != nil {
			return fmt.Errorf("output index: %w", err)
		}
		utxo := model.UTXO{
			OutPoint:      wire.OutPoint{Hash: txID, Index: index},
			Value:         out.Value,
			LockingScript: out.PkScript,
			PubKeyHash:    tpl.Hash,
			LockTime:      tx.LockTime,
			BlockHeight:   height,
		}
		if err := e.repo.AddUTXO(ctx, utxo); err != nil {
			return fmt.Errorf("add utxo %s: %w", utxo.OutPoint, err)
		}
		received += out.Value
		relevant = true
	}

	if !relevant {
		e.falsePositive()
		return nil
	}

	payment := model.Payment{TxID: txID, Direction: model.Received, Amount: received, BlockHeight: height}
	if spent > 0 {
		payment.Direction = model.Sent
		payment.Amount = 0
		if spent > received {
			payment.Amount = spent - received
		}
	}
	if err := e.repo.AddPayment(ctx, payment); err != nil {
		return fmt.Errorf("add payment: %w", err)
	}
	e.metrics.Payment(payment.Direction)
	logger.Info("payment recorded",
		zap.Stringer("direction", payment.Direction),
		zap.Uint64("amount", payment.Amount),
		zap.Uint32("height", height))
	return nil
}

// falsePositive counts irrelevant transactions and reloads the filter with a
// fresh tweak once the threshold is reached.
func (e *Engine) falsePositive() {
	e.metrics.FalsePositive()
	e.falsePositives++
	if e.falsePositives < e.cfg.FalsePositiveReloadThreshold {
		return
	}
	e.falsePositives = 0
	e.tweak = rand.Uint32()
	f := e.buildFilter()
	for p := range e.peers {
		if p.FilterLoaded() {
			p.SendFilterLoad(f)
		}
	}
	e.logger.Info("bloom filter reloaded", zap.Uint32("tweak", e.tweak))
}

func (e *Engine) announcePending(p Peer) {
	if len(e.pending) == 0 {
		return
	}
	inv := make([]wire.InvVect, 0, len(e.pending))
	for txID := range e.pending {
		inv = append(inv, wire.InvVect{Type: wire.InvTypeTx, Hash: txID})
	}
	p.SendInv(inv)
}

// requestData pushes pending transactions the peer asked for and records
// them in the wallet as unconfirmed.
func (e *Engine) requestData(p Peer, items []wire.InvVect) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, iv := range items {
		if iv.Type != wire.InvTypeTx {
			continue
		}
		tx, ok := e.pending[iv.Hash]
		if !ok {
			continue
		}
		p.SendTx(tx)
		delete(e.pending, iv.Hash)
		e.metrics.Broadcast(nil)
		e.logger.Info("transaction broadcast", zap.String("peer", p.Addr()), zap.Stringer("txid", iv.Hash))

		if err := e.ingest(e.ctx, tx, model.UnknownHeight); err != nil {
			e.logger.Error("record broadcast transaction", zap.Stringer("txid", iv.Hash), zap.Error(err))
		}
		for _, in := range tx.TxIn {
			delete(e.reserved, in.PreviousOutPoint)
		}
	}
}
