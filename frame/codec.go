package frame

import "encoding/binary"

// HeaderSize is the fixed size, in bytes, of every frame's header
// (spec §6.1). All multi-byte integer fields are little-endian.
const HeaderSize = 64

const (
	offVersion       = 0
	offKind          = 1
	offFlags         = 2
	offPriority      = 3
	offReserved1     = 4 // 4 bytes, zero on encode
	offMessageID     = 8
	offTraceID       = 16
	offCorrelationID = 24
	offPayloadLen    = 32
	offReserved2     = 36 // 12 bytes, zero on encode
	offReserved3     = 48 // 8 bytes, zero on encode
	offChecksum      = 56
)

// Encode serializes f into a contiguous 64-byte header followed by
// its payload. The result is ready to hand to a transport unchanged.
func Encode(f Frame) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+len(f.Payload))
	encodeHeaderInto(out[:HeaderSize], f)
	copy(out[HeaderSize:], f.Payload)
	return out, nil
}

// EncodeHeader serializes only f's 64-byte header (without payload
// bytes appended), primarily useful for incremental/scatter writers.
func EncodeHeader(f Frame) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	out := make([]byte, HeaderSize)
	encodeHeaderInto(out, f)
	return out, nil
}

func encodeHeaderInto(buf []byte, f Frame) {
	buf[offVersion] = f.Version
	buf[offKind] = uint8(f.Kind)
	buf[offFlags] = uint8(f.Flags)
	buf[offPriority] = f.Priority
	// offReserved1 left zero
	binary.LittleEndian.PutUint64(buf[offMessageID:], f.MessageID)
	binary.LittleEndian.PutUint64(buf[offTraceID:], f.TraceID)
	binary.LittleEndian.PutUint64(buf[offCorrelationID:], f.CorrelationID)
	binary.LittleEndian.PutUint32(buf[offPayloadLen:], uint32(len(f.Payload)))
	// offReserved2, offReserved3 left zero
	binary.LittleEndian.PutUint64(buf[offChecksum:], ChecksumHash(f.Payload))
}

// Header is the decoded form of a frame's 64-byte header, before the
// payload bytes (which may not yet be available, e.g. streaming I/O)
// have been read.
type Header struct {
	Version       uint8
	Kind          Kind
	Flags         Flags
	Priority      uint8
	MessageID     uint64
	TraceID       uint64
	CorrelationID uint64
	PayloadLen    uint32
	Checksum      uint64
}

// DecodeHeader parses the first 64 bytes of buf as a Header. It does
// not validate the checksum (the payload may not be present yet) or
// the version — callers combining this with payload bytes later
// should still run Decode, or check Header.Version, before trusting
// the result.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrTooShort
	}
	h := Header{
		Version:       buf[offVersion],
		Kind:          Kind(buf[offKind]),
		Flags:         Flags(buf[offFlags]),
		Priority:      buf[offPriority],
		MessageID:     binary.LittleEndian.Uint64(buf[offMessageID:]),
		TraceID:       binary.LittleEndian.Uint64(buf[offTraceID:]),
		CorrelationID: binary.LittleEndian.Uint64(buf[offCorrelationID:]),
		PayloadLen:    binary.LittleEndian.Uint32(buf[offPayloadLen:]),
		Checksum:      binary.LittleEndian.Uint64(buf[offChecksum:]),
	}
	return h, nil
}

// Decode parses a complete wire message (header + payload) back into
// a Frame. message_id is taken verbatim from the wire, never
// regenerated (spec §9).
func Decode(buf []byte) (Frame, error) {
	h, err := DecodeHeader(buf)
	if err != nil {
		return Frame{}, err
	}
	if h.Version != Version {
		return Frame{}, ErrUnsupportedVersion
	}
	if h.PayloadLen > MaxPayloadSize {
		return Frame{}, ErrPayloadLengthOverflow
	}
	end := HeaderSize + int(h.PayloadLen)
	if end > len(buf) {
		return Frame{}, ErrPayloadLengthOverflow
	}
	payload := buf[HeaderSize:end]
	if ChecksumHash(payload) != h.Checksum {
		return Frame{}, ErrChecksumMismatch
	}

	// Copy the payload out so the returned Frame doesn't alias the
	// caller's buffer (mirrors the teacher's own ReadFrame, which
	// always owns a fresh slice after decode).
	owned := make([]byte, len(payload))
	copy(owned, payload)

	return Frame{
		Version:       h.Version,
		Kind:          h.Kind,
		Flags:         h.Flags,
		Priority:      h.Priority,
		MessageID:     h.MessageID,
		TraceID:       h.TraceID,
		CorrelationID: h.CorrelationID,
		Payload:       owned,
	}, nil
}
