package frame

import "errors"

// Decode errors (spec §4.2/§7), surfaced from Decode/DecodeHeader.
var (
	ErrTooShort              = errors.New("frame: buffer shorter than the 64-byte header")
	ErrUnsupportedVersion    = errors.New("frame: unsupported version")
	ErrPayloadLengthOverflow = errors.New("frame: payload length exceeds buffer or the 16 MiB limit")
	ErrChecksumMismatch      = errors.New("frame: payload checksum mismatch")
)
