package wire

import "errors"

var (
	// ErrTruncatedInput is returned when a read runs past the end of the payload.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrMagicMismatch is returned when a frame carries another network's magic.
	ErrMagicMismatch = errors.New("network magic mismatch")
	// ErrChecksumMismatch is returned when a payload does not match the header checksum.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
	// ErrPayloadTooLarge is returned when a header announces more than MaxPayload bytes.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrTooManyHeaders is returned for a headers message above MaxHeadersPerMsg.
	ErrTooManyHeaders = errors.New("too many headers")
	// ErrNonZeroTxCount is returned when a header in a headers message carries transactions.
	ErrNonZeroTxCount = errors.New("header transaction count must be zero")
	// ErrVersionTooShort is returned for version payloads shorter than MinVersionPayload.
	ErrVersionTooShort = errors.New("version payload too short")
	// ErrTooManyItems is returned when a list exceeds its protocol bound.
	ErrTooManyItems = errors.New("too many items")
)
