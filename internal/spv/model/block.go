package model

import (
	"math"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/spv/wire"
)

// UnknownHeight marks records whose position in the chain is not known yet.
const UnknownHeight uint32 = math.MaxUint32

// BlockHeader is a header placed in the local chain.
type BlockHeader struct {
	wire.BlockHeader
	Height uint32
}
