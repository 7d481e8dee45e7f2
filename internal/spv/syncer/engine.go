// Package syncer keeps the header chain and the wallet in step with the network.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	retry "github.com/avast/retry-go/v4"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/discovery"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/keys"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/merkle"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/network"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/peer"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/script"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/txbuilder"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/uint256"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
	"github.com/goodnatureofminers/blockinsight7000-spv/pkg/batcher"
)

var (
	ErrChainMismatch      = errors.New("header does not connect to the chain tip")
	ErrCheckpointMismatch = errors.New("header hash does not match checkpoint")
	ErrStalePeer          = errors.New("peer is behind our chain")
	ErrNoSigningKeys      = errors.New("at least one signing key is required")
)

// Status is a snapshot of sync progress.
type Status struct {
	Height uint32
	Peers  int
	Synced bool
}

// Engine drives header sync, filtered block download and wallet bookkeeping
// for every connected peer. All peer callbacks and wallet calls are
// serialized on one mutex.
type Engine struct {
	repo        Repository
	params      *network.Params
	signers     []*keys.PrivateKey
	pubKeys     [][]byte
	watched     [][]byte
	cfg         Config
	metrics     Metrics
	peerMetrics peer.Metrics
	logger      *zap.Logger
	builder     *txbuilder.Builder
	resolver    Resolver
	dial        func(ctx context.Context, addr string) (*peer.Session, error)
	checkWork   func(*wire.BlockHeader) error

	mu             sync.Mutex
	ctx            context.Context
	requests       BlockRequester
	lastBlock      *model.BlockHeader
	nextCheckpoint int
	lastChecked    uint32
	lastCheckedSet bool
	requested      uint32
	inflight       map[chainhash.Hash]*blockGroup
	checked        map[uint32]struct{}
	pending        map[chainhash.Hash]*wire.MsgTx
	reserved       map[wire.OutPoint]chainhash.Hash
	peers          map[Peer]struct{}
	tweak          uint32
	falsePositives int
	synced         bool

	addrMu sync.Mutex
	addrs  []string
}

var _ peer.Handler = (*Engine)(nil)

// New builds an engine watching the public keys of signers.
func New(
	repo Repository,
	params *network.Params,
	signers []*keys.PrivateKey,
	cfg Config,
	metrics Metrics,
	peerMetrics peer.Metrics,
	logger *zap.Logger,
) (*Engine, error) {
	if repo == nil {
		return nil, errors.New("syncer repository is required")
	}
	if params == nil {
		return nil, errors.New("syncer network params are required")
	}
	if metrics == nil || peerMetrics == nil {
		return nil, errors.New("syncer metrics is required")
	}
	if len(signers) == 0 {
		return nil, ErrNoSigningKeys
	}
	if math.IsNaN(cfg.FalsePositiveRate) || cfg.FalsePositiveRate >= 1 {
		return nil, fmt.Errorf("false positive rate must be below 1, got %v", cfg.FalsePositiveRate)
	}

	cfg = cfg.withDefaults()
	e := &Engine{
		repo:        repo,
		params:      params,
		signers:     signers,
		cfg:         cfg,
		metrics:     metrics,
		peerMetrics: peerMetrics,
		logger:      logger.With(zap.String("network", string(params.Name))),
		builder:     txbuilder.New(cfg.FeePerByte),
		resolver:    discovery.NewResolver(logger.Named("discovery")),
		checkWork: func(h *wire.BlockHeader) error {
			return merkle.CheckProofOfWork(h, uint256.MaxProofOfWork)
		},
		ctx:      context.Background(),
		inflight: make(map[chainhash.Hash]*blockGroup),
		checked:  make(map[uint32]struct{}),
		pending:  make(map[chainhash.Hash]*wire.MsgTx),
		reserved: make(map[wire.OutPoint]chainhash.Hash),
		peers:    make(map[Peer]struct{}),
		tweak:    rand.Uint32(),
	}
	for _, k := range signers {
		pub := k.PublicKey()
		e.pubKeys = append(e.pubKeys, pub.Data)
		e.watched = append(e.watched, pub.PubKeyHash())
	}
	e.dial = e.dialSession
	return e, nil
}

// Run loads the local chain and keeps MaxPeers sessions alive until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.load(ctx); err != nil {
		return err
	}

	requests := batcher.New[BlockRequest](
		e.logger.Named("getdata"),
		flushBlockRequests,
		e.cfg.GetDataBatchSize,
		e.cfg.GetDataInterval,
		e.cfg.GetDataRate,
	)
	requests.Start(ctx)
	defer requests.Stop()

	e.mu.Lock()
	e.ctx = ctx
	e.requests = requests
	e.mu.Unlock()

	e.logger.Info("sync engine started", zap.Int("max_peers", e.cfg.MaxPeers))
	g, gctx := errgroup.WithContext(ctx)
	for slot := 0; slot < e.cfg.MaxPeers; slot++ {
		g.Go(func() error { return e.maintain(gctx, slot) })
	}
	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (e *Engine) load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	header, ok, err := e.repo.LatestBlockHeader(ctx)
	if err != nil {
		return fmt.Errorf("load chain tip: %w", err)
	}
	if ok {
		e.lastBlock = &header
	}
	_, height := e.tip()
	e.nextCheckpoint = e.params.NextCheckpointIndex(height)
	e.metrics.ChainHeight(height)

	checked, ok, err := e.repo.LastCheckedHeight(ctx)
	if err != nil {
		return fmt.Errorf("load sync cursor: %w", err)
	}
	if ok {
		e.lastChecked, e.lastCheckedSet, e.requested = checked, true, checked
	}
	e.logger.Info("local chain loaded",
		zap.Uint32("height", height),
		zap.Bool("empty", e.lastBlock == nil),
		zap.Uint32("last_checked", e.lastChecked))
	return nil
}

// maintain keeps one peer slot connected. Sessions that fail before the
// handshake back off exponentially; an established session that ends resets
// the backoff and the slot redials after a short jittered pause.
func (e *Engine) maintain(ctx context.Context, slot int) error {
	logger := e.logger.With(zap.Int("slot", slot))
	for {
		err := retry.Do(
			func() error { return e.connect(ctx, logger) },
			retry.Context(ctx),
			retry.Attempts(e.cfg.ReconnectAttempts),
			retry.Delay(e.cfg.ReconnectDelay),
			retry.MaxDelay(e.cfg.ReconnectMaxDelay),
			retry.DelayType(retry.BackOffDelay),
			retry.LastErrorOnly(true),
			retry.OnRetry(func(n uint, err error) {
				e.metrics.Reconnect()
				logger.Warn("peer session failed, backing off", zap.Uint("attempt", n+1), zap.Error(err))
			}),
		)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("peer slot %d: %w", slot, err)
		}
		if clock.Pause(ctx, e.cfg.ReconnectDelay) != nil {
			return nil
		}
	}
}

func (e *Engine) connect(ctx context.Context, logger *zap.Logger) error {
	addr, err := e.nextAddress(ctx)
	if err != nil {
		return err
	}
	s, err := e.dial(ctx, addr)
	if err != nil {
		return err
	}
	logger.Info("connected", zap.String("peer", addr))
	err = s.Run(ctx)
	if s.Established() {
		logger.Info("peer session ended", zap.String("peer", addr), zap.Error(err))
		return nil
	}
	return err
}

func (e *Engine) dialSession(ctx context.Context, addr string) (*peer.Session, error) {
	cfg := e.cfg.Session
	e.mu.Lock()
	_, cfg.StartHeight = e.tip()
	e.mu.Unlock()
	return peer.Dial(ctx, addr, cfg, e.params, e, e.peerMetrics, e.logger.Named("peer"))
}

// nextAddress hands out configured peers or DNS seed results round-robin,
// resolving again once the list is used up.
func (e *Engine) nextAddress(ctx context.Context) (string, error) {
	e.addrMu.Lock()
	defer e.addrMu.Unlock()

	if len(e.addrs) == 0 {
		if len(e.cfg.Peers) > 0 {
			e.addrs = append([]string(nil), e.cfg.Peers...)
		} else {
			addrs, err := e.resolver.ResolveSeeds(ctx, e.params.DNSSeeds, e.params.DefaultPort)
			if err != nil {
				return "", fmt.Errorf("resolve dns seeds: %w", err)
			}
			e.addrs = addrs
		}
	}
	addr := e.addrs[0]
	e.addrs = e.addrs[1:]
	return addr, nil
}

// Status reports chain height, handshaked peer count and whether header sync caught up.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, height := e.tip()
	return Status{Height: height, Peers: len(e.peers), Synced: e.synced}
}

// Balance sums the unspent outputs of every watched key.
func (e *Engine) Balance(ctx context.Context) (uint64, error) {
	var total uint64
	for _, hash := range e.watched {
		b, err := e.repo.Balance(ctx, hash)
		if err != nil {
			return 0, fmt.Errorf("balance: %w", err)
		}
		total += b
	}
	return total, nil
}

func (e *Engine) Payments(ctx context.Context) ([]model.Payment, error) {
	payments, err := e.repo.Payments(ctx)
	if err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}
	return payments, nil
}

// Send builds and signs a payment of amount satoshis to address and announces
// it to every filtered peer. The transaction is pushed when a peer asks for it.
func (e *Engine) Send(ctx context.Context, address string, amount uint64) (chainhash.Hash, error) {
	destination, err := keys.DestinationScript(address, e.params)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("destination %q: %w", address, err)
	}
	change, err := script.PayToPubKeyHash(e.watched[0])
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("change script: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var utxos []model.UTXO
	for _, hash := range e.watched {
		owned, err := e.repo.UTXOs(ctx, hash)
		if err != nil {
			return chainhash.Hash{}, fmt.Errorf("load utxos: %w", err)
		}
		for _, u := range owned {
			if _, spent := e.reserved[u.OutPoint]; !spent {
				utxos = append(utxos, u)
			}
		}
	}

	tx, err := e.builder.Build(destination, change, amount, utxos, e.signers)
	if err != nil {
		e.metrics.Broadcast(err)
		return chainhash.Hash{}, fmt.Errorf("build transaction: %w", err)
	}
	txID := tx.TxHash()
	e.pending[txID] = tx
	for _, in := range tx.TxIn {
		e.reserved[in.PreviousOutPoint] = txID
	}

	inv := []wire.InvVect{{Type: wire.InvTypeTx, Hash: txID}}
	announced := 0
	for p := range e.peers {
		if p.FilterLoaded() {
			p.SendInv(inv)
			announced++
		}
	}
	e.logger.Info("transaction queued for broadcast",
		zap.Stringer("txid", txID),
		zap.Uint64("amount", amount),
		zap.Int("announced_to", announced))
	return txID, nil
}

func (e *Engine) PeerDidHandshake(s *peer.Session) { e.handshake(s) }

func (e *Engine) PeerDidReceiveHeaders(s *peer.Session, headers []wire.BlockHeader) {
	e.headers(s, headers)
}

func (e *Engine) PeerDidReceiveMerkleBlock(s *peer.Session, mb *wire.MsgMerkleBlock) {
	e.merkleBlock(s, mb)
}

func (e *Engine) PeerDidReceiveTransaction(s *peer.Session, tx *wire.MsgTx, mb *wire.MsgMerkleBlock) {
	e.transaction(s, tx, mb)
}

func (e *Engine) PeerDidRequestData(s *peer.Session, items []wire.InvVect) {
	e.requestData(s, items)
}

func (e *Engine) PeerDidDisconnect(s *peer.Session, reason error) { e.disconnect(s, reason) }

func (e *Engine) disconnect(p Peer, reason error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.peers, p)
	// Requests in flight on that peer, including blocks still waiting for
	// their transactions, are asked again from the next one.
	for hash, g := range e.inflight {
		if g.peer == p {
			delete(e.inflight, hash)
		}
	}
	e.requested = e.lastChecked
	e.logger.Info("peer removed", zap.String("peer", p.Addr()), zap.Error(reason), zap.Int("peers", len(e.peers)))
}

// flushBlockRequests turns a batch into one getdata per peer.
func flushBlockRequests(_ context.Context, reqs []BlockRequest) error {
	var order []Peer
	byPeer := make(map[Peer][]wire.InvVect)
	for _, r := range reqs {
		if _, ok := byPeer[r.Peer]; !ok {
			order = append(order, r.Peer)
		}
		byPeer[r.Peer] = append(byPeer[r.Peer], wire.InvVect{Type: wire.InvTypeFilteredBlock, Hash: r.Hash})
	}
	for _, p := range order {
		p.SendGetData(byPeer[p])
	}
	return nil
}
