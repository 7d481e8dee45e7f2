// Package peer runs one Bitcoin peer-to-peer connection: handshake, framing and dispatch.
package peer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/bloom"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/merkle"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/network"
	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

var (
	// ErrProtocolViolation is wrapped by every disconnect caused by the remote misbehaving.
	ErrProtocolViolation = errors.New("protocol violation")
	// ErrQueueFull closes a session whose writer fell a whole queue behind.
	ErrQueueFull = errors.New("outbound queue full")
)

// State is the handshake progress of a session.
type State int32

const (
	StateConnecting State = iota
	StateAwaitingVersion
	StateAwaitingVerack
	StateHandshaked
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAwaitingVersion:
		return "awaiting_version"
	case StateAwaitingVerack:
		return "awaiting_verack"
	case StateHandshaked:
		return "handshaked"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Config tunes a session. Zero durations disable the matching deadline.
type Config struct {
	HandshakeTimeout time.Duration
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	QueueSize        int
	UserAgent        string
	// StartHeight is advertised in our version message.
	StartHeight uint32
}

// DefaultConfig returns the production timeouts.
func DefaultConfig() Config {
	return Config{
		HandshakeTimeout: DefaultHandshakeTimeout,
		ReadTimeout:      DefaultReadTimeout,
		WriteTimeout:     DefaultWriteTimeout,
		QueueSize:        DefaultQueueSize,
		UserAgent:        DefaultUserAgent,
	}
}

// Session owns one connection. Inbound messages are handled strictly in order
// on the reader goroutine; outbound messages go through a queue drained by a
// single writer goroutine.
type Session struct {
	conn    net.Conn
	addr    string
	cfg     Config
	params  *network.Params
	handler Handler
	metrics Metrics
	logger  *zap.Logger
	verify  func(*wire.MsgMerkleBlock) ([]chainhash.Hash, error)

	out       chan wire.Message
	quit      chan struct{}
	closeOnce sync.Once
	reasonMu  sync.Mutex
	reason    error

	state        atomic.Int32
	remoteHeight atomic.Uint32
	sentFilter   atomic.Bool
	established  atomic.Bool

	// reader goroutine only
	gotVersion bool
	gotVerack  bool
	current    *merkleGroup
}

// merkleGroup tracks the matched transactions still expected after a merkle block.
type merkleGroup struct {
	block   *wire.MsgMerkleBlock
	pending map[chainhash.Hash]struct{}
}

// NewSession wraps an established connection. Nothing is sent until Run.
func NewSession(
	conn net.Conn,
	cfg Config,
	params *network.Params,
	handler Handler,
	metrics Metrics,
	logger *zap.Logger,
) (*Session, error) {
	if handler == nil {
		return nil, errors.New("peer handler is required")
	}
	if metrics == nil {
		return nil, errors.New("peer metrics is required")
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	addr := conn.RemoteAddr().String()
	return &Session{
		conn:    conn,
		addr:    addr,
		cfg:     cfg,
		params:  params,
		handler: handler,
		metrics: metrics,
		logger:  logger.With(zap.String("peer", addr)),
		verify:  merkle.Verify,
		out:     make(chan wire.Message, cfg.QueueSize),
		quit:    make(chan struct{}),
	}, nil
}

// Dial connects to addr and wraps the connection in a session.
func Dial(
	ctx context.Context,
	addr string,
	cfg Config,
	params *network.Params,
	handler Handler,
	metrics Metrics,
	logger *zap.Logger,
) (*Session, error) {
	dialer := net.Dialer{Timeout: DefaultDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	s, err := NewSession(conn, cfg, params, handler, metrics, logger)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *Session) Addr() string { return s.addr }

func (s *Session) State() State { return State(s.state.Load()) }

// RemoteHeight is the start height the peer advertised in its version message.
func (s *Session) RemoteHeight() uint32 { return s.remoteHeight.Load() }

// Established reports whether the handshake ever completed, including after disconnect.
func (s *Session) Established() bool { return s.established.Load() }

// FilterLoaded reports whether a bloom filter has been sent on this session.
func (s *Session) FilterLoaded() bool { return s.sentFilter.Load() }

// Run sends our version and processes messages until the connection fails,
// the remote violates the protocol, Disconnect is called or ctx is done.
// The handler's PeerDidDisconnect is called exactly once before Run returns.
func (s *Session) Run(ctx context.Context) error {
	s.state.Store(int32(StateAwaitingVersion))
	s.Send(s.versionMessage())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(s.writeLoop)
	g.Go(func() error {
		select {
		case <-gctx.Done():
			s.Disconnect(ctx.Err())
		case <-s.quit:
		}
		return nil
	})
	g.Go(s.readLoop)
	_ = g.Wait()

	s.state.Store(int32(StateDisconnected))
	reason := s.Err()
	s.metrics.Disconnect(reasonLabel(reason))
	s.logger.Info("peer disconnected", zap.Error(reason))
	s.handler.PeerDidDisconnect(s, reason)
	return reason
}

// Err is the reason the session closed, or nil while it is open.
func (s *Session) Err() error {
	s.reasonMu.Lock()
	defer s.reasonMu.Unlock()
	return s.reason
}

// Disconnect closes the connection. Only the first reason is kept.
func (s *Session) Disconnect(reason error) {
	s.closeOnce.Do(func() {
		if reason == nil {
			reason = io.EOF
		}
		s.reasonMu.Lock()
		s.reason = reason
		s.reasonMu.Unlock()
		close(s.quit)
		_ = s.conn.Close()
	})
}

// Send queues m for the writer and never blocks. A closed session drops m;
// a full queue means the peer stopped reading, so the session is closed.
func (s *Session) Send(m wire.Message) {
	select {
	case <-s.quit:
		s.logger.Debug("dropping message for closed session", zap.String("command", m.Command()))
		return
	default:
	}
	select {
	case s.out <- m:
	default:
		s.logger.Warn("peer is not draining its queue", zap.String("command", m.Command()))
		s.Disconnect(fmt.Errorf("%w: %s", ErrQueueFull, m.Command()))
	}
}

func (s *Session) SendGetHeaders(locator []chainhash.Hash) {
	s.Send(&wire.MsgGetHeaders{
		ProtocolVersion: s.params.ProtocolVersion,
		BlockLocator:    locator,
	})
}

// SendFilterLoad installs f on the peer. Merkle blocks and transactions are
// only accepted after this.
func (s *Session) SendFilterLoad(f *bloom.Filter) {
	s.Send(f.MsgFilterLoad())
	s.sentFilter.Store(true)
}

func (s *Session) SendGetData(items []wire.InvVect) {
	if len(items) == 0 {
		return
	}
	s.Send(&wire.MsgGetData{InvList: items})
}

func (s *Session) SendInv(items []wire.InvVect) {
	if len(items) == 0 {
		return
	}
	s.Send(&wire.MsgInv{InvList: items})
}

func (s *Session) SendTx(tx *wire.MsgTx) {
	s.Send(tx)
}

func (s *Session) versionMessage() *wire.MsgVersion {
	var recv wire.NetAddress
	if tcp, ok := s.conn.RemoteAddr().(*net.TCPAddr); ok {
		recv = wire.NewNetAddress(tcp, 0)
	} else {
		recv = wire.NewNetAddress(nil, 0)
	}
	return &wire.MsgVersion{
		ProtocolVersion: int32(s.params.ProtocolVersion),
		Timestamp:       time.Now().Unix(),
		AddrRecv:        recv,
		AddrFrom:        wire.NewNetAddress(nil, 0),
		Nonce:           rand.Uint64(),
		UserAgent:       s.cfg.UserAgent,
		StartHeight:     int32(s.cfg.StartHeight),
		// No unfiltered tx relay: a filter follows the handshake.
		Relay: false,
	}
}

func (s *Session) writeLoop() error {
	for {
		select {
		case <-s.quit:
			return nil
		case m := <-s.out:
			if s.cfg.WriteTimeout > 0 {
				_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			}
			if err := wire.WriteMessage(s.conn, s.params.Magic, m); err != nil {
				s.logger.Warn("send failed", zap.String("command", m.Command()), zap.Error(err))
				s.Disconnect(err)
				return nil
			}
			s.metrics.MessageSent(m.Command())
			s.logger.Debug("sent", zap.String("command", m.Command()))
		}
	}
}

func (s *Session) readLoop() error {
	handshakeDeadline := time.Time{}
	if s.cfg.HandshakeTimeout > 0 {
		handshakeDeadline = time.Now().Add(s.cfg.HandshakeTimeout)
	}
	for {
		deadline := handshakeDeadline
		if s.State() == StateHandshaked {
			deadline = time.Time{}
			if s.cfg.ReadTimeout > 0 {
				deadline = time.Now().Add(s.cfg.ReadTimeout)
			}
		}
		_ = s.conn.SetReadDeadline(deadline)

		msg, err := wire.ReadMessage(s.conn, s.params.Magic)
		if err != nil {
			s.Disconnect(err)
			return err
		}
		s.metrics.MessageReceived(msg.Command())
		if err := s.handle(msg); err != nil {
			s.logger.Warn("disconnecting misbehaving peer", zap.Error(err))
			s.Disconnect(err)
			return err
		}
	}
}

func (s *Session) handle(msg wire.Message) error {
	if _, isTx := msg.(*wire.MsgTx); !isTx && s.current != nil {
		s.logger.Debug("merkle block group closed early",
			zap.Stringer("block", s.current.block.BlockHash()),
			zap.Int("missing", len(s.current.pending)))
		s.current = nil
	}

	switch m := msg.(type) {
	case *wire.MsgVersion:
		return s.handleVersion(m)
	case *wire.MsgVerAck:
		return s.handleVerAck()
	}

	if s.State() != StateHandshaked {
		s.logger.Debug("ignoring message before handshake", zap.String("command", msg.Command()))
		return nil
	}

	switch m := msg.(type) {
	case *wire.MsgPing:
		s.Send(&wire.MsgPong{Nonce: m.Nonce})
	case *wire.MsgHeaders:
		s.logger.Debug("got headers", zap.Int("count", len(m.Headers)))
		s.handler.PeerDidReceiveHeaders(s, m.Headers)
	case *wire.MsgMerkleBlock:
		s.handleMerkleBlock(m)
	case *wire.MsgTx:
		s.handleTx(m)
	case *wire.MsgInv:
		s.handleInv(m)
	case *wire.MsgGetData:
		s.handler.PeerDidRequestData(s, m.InvList)
	case *wire.MsgReject:
		fields := []zap.Field{
			zap.String("message", m.Cmd),
			zap.Uint8("code", m.Code),
			zap.String("reason", m.Reason),
		}
		if m.Hash != nil {
			fields = append(fields, zap.Stringer("hash", m.Hash))
		}
		s.logger.Warn("peer rejected message", fields...)
	default:
		s.logger.Debug("ignoring message", zap.String("command", msg.Command()))
	}
	return nil
}

func (s *Session) handleVersion(m *wire.MsgVersion) error {
	if s.gotVersion {
		return s.handshakeFailed(fmt.Errorf("%w: duplicate version", ErrProtocolViolation))
	}
	if m.ProtocolVersion < int32(s.params.MinProtocolVersion) {
		return s.handshakeFailed(fmt.Errorf("%w: protocol version %d below %d",
			ErrProtocolViolation, m.ProtocolVersion, s.params.MinProtocolVersion))
	}
	if m.Services&wire.SFNodeBloom == 0 {
		return s.handshakeFailed(fmt.Errorf("%w: bloom filter service not offered", ErrProtocolViolation))
	}
	if !m.HasStartHeight() {
		return s.handshakeFailed(fmt.Errorf("%w: version without start height", ErrProtocolViolation))
	}

	height := m.StartHeight
	if height < 0 {
		height = 0
	}
	s.remoteHeight.Store(uint32(height))
	s.gotVersion = true
	s.state.Store(int32(StateAwaitingVerack))
	s.logger.Info("got version",
		zap.Int32("version", m.ProtocolVersion),
		zap.String("user_agent", m.UserAgent),
		zap.Int32("start_height", m.StartHeight))
	s.Send(&wire.MsgVerAck{})
	return nil
}

func (s *Session) handleVerAck() error {
	if !s.gotVersion || s.gotVerack {
		return s.handshakeFailed(fmt.Errorf("%w: unexpected verack", ErrProtocolViolation))
	}
	s.gotVerack = true
	s.established.Store(true)
	s.state.Store(int32(StateHandshaked))
	s.metrics.Handshake(nil)
	s.logger.Info("handshake complete", zap.Uint32("remote_height", s.RemoteHeight()))
	s.handler.PeerDidHandshake(s)
	return nil
}

func (s *Session) handshakeFailed(err error) error {
	if s.State() != StateHandshaked {
		s.metrics.Handshake(err)
	}
	return err
}

func (s *Session) handleMerkleBlock(mb *wire.MsgMerkleBlock) {
	if !s.FilterLoaded() {
		s.logger.Warn("merkle block before filter load", zap.Stringer("block", mb.BlockHash()))
		return
	}
	matched, err := s.verify(mb)
	if err != nil {
		// An honest peer can race a reorg; drop the block but keep the peer.
		s.metrics.InvalidMerkleBlock()
		s.logger.Warn("invalid merkle block", zap.Stringer("block", mb.BlockHash()), zap.Error(err))
		return
	}
	if len(matched) > 0 {
		pending := make(map[chainhash.Hash]struct{}, len(matched))
		for _, h := range matched {
			pending[h] = struct{}{}
		}
		s.current = &merkleGroup{block: mb, pending: pending}
	}
	s.logger.Debug("got merkle block", zap.Stringer("block", mb.BlockHash()), zap.Int("matched", len(matched)))
	s.handler.PeerDidReceiveMerkleBlock(s, mb)
}

func (s *Session) handleTx(tx *wire.MsgTx) {
	if !s.FilterLoaded() {
		s.logger.Warn("transaction before filter load")
		return
	}
	hash := tx.TxHash()
	var mb *wire.MsgMerkleBlock
	if s.current != nil {
		if _, ok := s.current.pending[hash]; !ok {
			s.logger.Warn("transaction outside the current merkle block", zap.Stringer("tx", hash))
			return
		}
		mb = s.current.block
		delete(s.current.pending, hash)
		if len(s.current.pending) == 0 {
			s.current = nil
		}
	}
	s.handler.PeerDidReceiveTransaction(s, tx, mb)
}

func (s *Session) handleInv(m *wire.MsgInv) {
	if !s.FilterLoaded() {
		s.logger.Debug("inv before filter load", zap.Int("count", len(m.InvList)))
		return
	}
	request := make([]wire.InvVect, 0, len(m.InvList))
	for _, iv := range m.InvList {
		switch iv.Type {
		case wire.InvTypeBlock:
			request = append(request, wire.InvVect{Type: wire.InvTypeFilteredBlock, Hash: iv.Hash})
		case wire.InvTypeTx:
			request = append(request, iv)
		}
	}
	s.SendGetData(request)
}

func reasonLabel(err error) string {
	var netErr net.Error
	switch {
	case err == nil:
		return "unknown"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.Is(err, ErrProtocolViolation):
		return "protocol"
	case errors.Is(err, ErrQueueFull):
		return "queue_full"
	case errors.Is(err, os.ErrDeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, net.ErrClosed):
		return "closed"
	case errors.Is(err, wire.ErrMagicMismatch), errors.Is(err, wire.ErrChecksumMismatch),
		errors.Is(err, wire.ErrPayloadTooLarge), errors.Is(err, wire.ErrTruncatedInput):
		return "malformed"
	default:
		return "other"
	}
}
