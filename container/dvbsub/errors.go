/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the DVB subtitle decoder's error taxonomy, per
  spec.md section 7.

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

import "errors"

// Sentinel errors returned by the stream demultiplexer and segment
// parsers. NeedMoreData is the only one a caller should treat as
// "retry with more bytes"; the rest are either fatal to the current feed
// or logged-and-skipped at the segment/pixel level.
var (
	// ErrNotPes is returned when the leading 3 bytes of a buffer passed to
	// Feed are not the PES start code 00 00 01.
	ErrNotPes = errors.New("dvbsub: not a PES packet")

	// ErrWrongStreamID is returned when a PES packet's stream_id is not
	// 0xBD (private_stream_1).
	ErrWrongStreamID = errors.New("dvbsub: wrong PES stream id")

	// ErrNeedMoreData is returned when the buffer is shorter than the
	// declared PES_packet_length; the caller should retry with the same
	// prefix plus more bytes appended.
	ErrNeedMoreData = errors.New("dvbsub: need more data")

	// ErrNotDvbSubtitle is returned when the data-identifier or
	// subtitle-stream-id bytes following the PES header do not match the
	// fixed values 0x20, 0x00.
	ErrNotDvbSubtitle = errors.New("dvbsub: not a DVB subtitle stream")

	// ErrTruncatedSegment is returned when a segment's declared length
	// overruns the remaining buffer.
	ErrTruncatedSegment = errors.New("dvbsub: truncated segment")

	// ErrUnknownSegment is returned for a segment type outside the
	// accepted set; the caller logs and skips via the declared length.
	ErrUnknownSegment = errors.New("dvbsub: unknown segment type")

	// ErrMalformedPixelStream names the malformed-data category. No code
	// path returns it: a CLUT entry with no depth flags is logged and
	// skipped, an illegal region depth is clamped to 4 with a warning, and
	// an unknown coding_method is logged and the object data skipped.
	ErrMalformedPixelStream = errors.New("dvbsub: malformed pixel stream")

	// ErrUnsupportedCoding names object data with coding_method == 1
	// (string of characters), which this decoder does not implement. No
	// code path returns it: such object data is logged as a warning each
	// time it arrives and otherwise skipped.
	ErrUnsupportedCoding = errors.New("dvbsub: unsupported coding method")

	// ErrFatal names unrecoverable conditions that invalidate the decoder
	// instance. No code path returns it; pixel buffers are allocated with
	// make, so an allocation failure is a runtime panic, not an error.
	ErrFatal = errors.New("dvbsub: fatal decoder error")
)
