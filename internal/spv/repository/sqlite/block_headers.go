package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
	"github.com/goodnatureofminers/blockinsight7000-spv/pkg/safe"
)

// AddBlockHeader stores header at its height, replacing whatever held that height or hash.
func (r *Repository) AddBlockHeader(ctx context.Context, header model.BlockHeader) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("add_block_header", err, start)
	}()

	const query = `
INSERT OR REPLACE INTO block_headers (hash, height, version, prev_block, merkle_root, timestamp, bits, nonce)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	hash := header.BlockHash()
	_, err = r.db.ExecContext(ctx, query,
		hash[:],
		int64(header.Height),
		header.Version,
		header.PrevBlock[:],
		header.MerkleRoot[:],
		int64(header.Timestamp),
		int64(header.Bits),
		int64(header.Nonce),
	)
	if err != nil {
		return fmt.Errorf("insert block header %d: %w", header.Height, err)
	}
	return nil
}

// LatestBlockHeader returns the highest stored header.
func (r *Repository) LatestBlockHeader(ctx context.Context) (model.BlockHeader, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_block_header", err, start)
	}()

	const query = `
SELECT height, version, prev_block, merkle_root, timestamp, bits, nonce
FROM block_headers
ORDER BY height DESC
LIMIT 1`

	var (
		header                 model.BlockHeader
		height                 int64
		prevBlock, merkleRoot  []byte
		timestamp, bits, nonce int64
	)
	err = r.db.QueryRowContext(ctx, query).
		Scan(&height, &header.Version, &prevBlock, &merkleRoot, &timestamp, &bits, &nonce)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return model.BlockHeader{}, false, nil
	}
	if err != nil {
		return model.BlockHeader{}, false, fmt.Errorf("query latest block header: %w", err)
	}

	if header.Height, err = safe.Uint32(height); err != nil {
		return model.BlockHeader{}, false, fmt.Errorf("block height: %w", err)
	}
	if header.Timestamp, err = safe.Uint32(timestamp); err != nil {
		return model.BlockHeader{}, false, fmt.Errorf("block timestamp: %w", err)
	}
	if header.Bits, err = safe.Uint32(bits); err != nil {
		return model.BlockHeader{}, false, fmt.Errorf("block bits: %w", err)
	}
	if header.Nonce, err = safe.Uint32(nonce); err != nil {
		return model.BlockHeader{}, false, fmt.Errorf("block nonce: %w", err)
	}
	if err = setHash(&header.PrevBlock, prevBlock); err != nil {
		return model.BlockHeader{}, false, fmt.Errorf("prev block: %w", err)
	}
	if err = setHash(&header.MerkleRoot, merkleRoot); err != nil {
		return model.BlockHeader{}, false, fmt.Errorf("merkle root: %w", err)
	}
	return header, true, nil
}

func (r *Repository) BlockHeight(ctx context.Context, hash chainhash.Hash) (uint32, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_height", err, start)
	}()

	var height int64
	err = r.db.QueryRowContext(ctx, `SELECT height FROM block_headers WHERE hash = ?`, hash[:]).Scan(&height)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query block height: %w", err)
	}
	h, err := safe.Uint32(height)
	if err != nil {
		return 0, false, fmt.Errorf("block height: %w", err)
	}
	return h, true, nil
}

// BlockHashesFrom returns up to limit hashes in height order starting at height.
func (r *Repository) BlockHashesFrom(ctx context.Context, height uint32, limit int) ([]chainhash.Hash, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_hashes_from", err, start)
	}()

	const query = `
SELECT hash
FROM block_headers
WHERE height >= ?
ORDER BY height
LIMIT ?`

	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, query, int64(height), limit)
	if err != nil {
		return nil, fmt.Errorf("query block hashes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	hashes := make([]chainhash.Hash, 0, limit)
	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan block hash: %w", err)
		}
		var h chainhash.Hash
		if err = setHash(&h, raw); err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block hashes: %w", err)
	}
	return hashes, nil
}

func setHash(dst *chainhash.Hash, raw []byte) error {
	if err := dst.SetBytes(raw); err != nil {
		return fmt.Errorf("decode hash: %w", err)
	}
	return nil
}
