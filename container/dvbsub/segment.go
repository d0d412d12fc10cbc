/*
NAME
  segment.go

DESCRIPTION
  segment.go provides segment framing and per-segment-type dispatch, and
  a small sticky-error byte reader shared by the individual segment
  parsers (segment_*.go), per spec.md section 4.5.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dvbsub

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// segmentSyncByte precedes every segment.
const segmentSyncByte = 0x0F

// Segment types accepted by the decoder, per spec.md section 6.
const (
	segPageComposition    = 0x10
	segRegionComposition  = 0x11
	segCLUTDefinition     = 0x12
	segObjectData         = 0x13
	segDisplayDefinition  = 0x14
	segEndOfDisplaySet    = 0x80
	segStuffing           = 0xFF
)

// dispatchSegment parses the segment framing header (sync byte, type,
// page_id, length) at the start of data and routes the payload to the
// matching parser. It returns the number of bytes consumed (including the
// 6-byte header), which is always used to advance the caller's cursor
// even when err is non-nil, since a segment-level error per spec.md
// section 7 only skips that one segment.
func (d *Decoder) dispatchSegment(data []byte, pts uint64) (consumed int, err error) {
	const headerLen = 6
	if len(data) < headerLen {
		return len(data), errors.Wrap(ErrTruncatedSegment, "segment header")
	}

	segType := data[1]
	pageID := binary.BigEndian.Uint16(data[2:4])
	segLen := int(binary.BigEndian.Uint16(data[4:6]))
	total := headerLen + segLen

	if len(data) < total {
		return len(data), errors.Wrap(ErrTruncatedSegment, "segment payload")
	}
	payload := data[headerLen:total]

	if d.categoryEnabled(segmentCategory(segType)) {
		d.log.Debug("segment", "type", segType, "page_id", pageID, "length", segLen)
	}

	switch segType {
	case segPageComposition:
		parsePageComposition(d.state, payload, d.log)
	case segRegionComposition:
		parseRegionComposition(d.state, payload, d.log)
	case segCLUTDefinition:
		parseCLUTDefinition(d.state, payload, d.log)
	case segObjectData:
		parseObjectData(d.state, payload, d.log)
	case segDisplayDefinition:
		parseDisplayDefinition(d.state, payload, d.log)
	case segEndOfDisplaySet:
		ds := buildDisplaySet(d.state, pts)
		d.sink.emit(ds)
	case segStuffing:
		// Ignored.
	default:
		err = errors.Wrapf(ErrUnknownSegment, "type 0x%02x", segType)
	}

	return total, err
}

// segReader is a sticky-error byte cursor over a segment payload, used by
// the individual segment parsers to read fixed-width fields without
// checking an error after every call, mirroring the fieldReader pattern in
// codec/h264/h264dec/parse.go.
type segReader struct {
	b   []byte
	pos int
	err error
}

func newSegReader(b []byte) *segReader {
	return &segReader{b: b}
}

// u8 reads one byte, or returns 0 and sets r.err if the buffer is
// exhausted.
func (r *segReader) u8() byte {
	if r.err != nil {
		return 0
	}
	if r.pos >= len(r.b) {
		r.err = ErrTruncatedSegment
		return 0
	}
	v := r.b[r.pos]
	r.pos++
	return v
}

// u16 reads a big-endian 16-bit field.
func (r *segReader) u16() uint16 {
	hi := r.u8()
	lo := r.u8()
	return uint16(hi)<<8 | uint16(lo)
}

// bytes reads n raw bytes.
func (r *segReader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.b) {
		r.err = ErrTruncatedSegment
		return nil
	}
	v := r.b[r.pos : r.pos+n]
	r.pos += n
	return v
}

// remaining returns the number of unread bytes.
func (r *segReader) remaining() int {
	return len(r.b) - r.pos
}

// skip advances the cursor by n bytes without reading them.
func (r *segReader) skip(n int) {
	if r.err != nil {
		return
	}
	if r.pos+n > len(r.b) {
		r.err = ErrTruncatedSegment
		r.pos = len(r.b)
		return
	}
	r.pos += n
}
