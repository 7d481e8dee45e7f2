package peer

import "time"

const (
	DefaultHandshakeTimeout = 30 * time.Second
	// DefaultReadTimeout is long enough for peers that only ping every two minutes.
	DefaultReadTimeout  = 5 * time.Minute
	DefaultWriteTimeout = 30 * time.Second
	DefaultDialTimeout  = 10 * time.Second
	DefaultQueueSize    = 64
	DefaultUserAgent    = "/blockinsight7000-spv:0.1.0/"
)
