package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/model"
)

const (
	insertBlockHeaderQuery = `
INSERT INTO spv_block_headers (network, height, hash, version, prev_block, merkle_root, timestamp, bits, nonce)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	latestBlockHeaderQuery = `
SELECT height, version, prev_block, merkle_root, timestamp, bits, nonce
FROM spv_block_headers FINAL
WHERE network = ?
ORDER BY height DESC
LIMIT 1`

	blockHeightQuery = `
SELECT height
FROM spv_block_headers FINAL
WHERE network = ? AND hash = ?
LIMIT 1`

	blockHashesFromQuery = `
SELECT hash
FROM spv_block_headers FINAL
WHERE network = ? AND height >= ?
ORDER BY height
LIMIT ?`
)

func (r *Repository) AddBlockHeader(ctx context.Context, header model.BlockHeader) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("add_block_header", err, start)
	}()

	err = r.conn.Exec(ctx, insertBlockHeaderQuery,
		string(r.network),
		header.Height,
		header.BlockHash().String(),
		header.Version,
		header.PrevBlock.String(),
		header.MerkleRoot.String(),
		header.Timestamp,
		header.Bits,
		header.Nonce,
	)
	if err != nil {
		return fmt.Errorf("insert block header %d: %w", header.Height, err)
	}
	return nil
}

func (r *Repository) LatestBlockHeader(ctx context.Context) (model.BlockHeader, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_block_header", err, start)
	}()

	var (
		header                model.BlockHeader
		prevBlock, merkleRoot string
	)
	found, err := r.scanOne(ctx, latestBlockHeaderQuery, []any{string(r.network)},
		&header.Height, &header.Version, &prevBlock, &merkleRoot, &header.Timestamp, &header.Bits, &header.Nonce)
	if err != nil {
		return model.BlockHeader{}, false, fmt.Errorf("query latest block header: %w", err)
	}
	if !found {
		return model.BlockHeader{}, false, nil
	}
	if header.PrevBlock, err = parseHash(prevBlock); err != nil {
		return model.BlockHeader{}, false, err
	}
	if header.MerkleRoot, err = parseHash(merkleRoot); err != nil {
		return model.BlockHeader{}, false, err
	}
	return header, true, nil
}

func (r *Repository) BlockHeight(ctx context.Context, hash chainhash.Hash) (uint32, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_height", err, start)
	}()

	var height uint32
	found, err := r.scanOne(ctx, blockHeightQuery, []any{string(r.network), hash.String()}, &height)
	if err != nil {
		return 0, false, fmt.Errorf("query block height: %w", err)
	}
	return height, found, nil
}

func (r *Repository) BlockHashesFrom(ctx context.Context, height uint32, limit int) ([]chainhash.Hash, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("block_hashes_from", err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.conn.Query(ctx, blockHashesFromQuery, string(r.network), height, limit)
	if err != nil {
		return nil, fmt.Errorf("query block hashes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var hashes []chainhash.Hash
	for rows.Next() {
		var s string
		if err = rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan block hash: %w", err)
		}
		var h chainhash.Hash
		if h, err = parseHash(s); err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block hashes: %w", err)
	}
	return hashes, nil
}
