/*
NAME
  bitreader.go

DESCRIPTION
  bitreader.go provides an MSB-first bit reader over a fixed byte buffer,
  used by the DVB subtitle pixel engine and segment parsers.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides an MSB-first bit reader over a byte buffer, used by
// the DVB subtitle decoder's pixel run-length engine and segment parsers.
//
// Unlike codec/h264/h264dec/bits, which reads from an io.Reader and returns
// an error on short reads, this Reader is bounds-tracking but never errors:
// a read that runs past the end of the buffer returns zero bits. This
// mirrors the reference decoder's behaviour of treating unavailable data as
// zero rather than failing a malformed-but-otherwise-decodable stream.
package bits

// Reader is a bit reader over a byte slice that reads MSB-first and returns
// zero bits once the buffer is exhausted, rather than erroring.
type Reader struct {
	buf []byte
	pos int // bit position from the start of buf.
}

// NewReader returns a Reader over buf, starting at bit 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// totalBits is the number of bits available in the underlying buffer.
func (r *Reader) totalBits() int {
	return len(r.buf) * 8
}

// Peek returns the next n bits (n <= 32) without advancing the position.
// Bits beyond the end of the buffer are returned as zero.
func (r *Reader) Peek(n int) uint32 {
	return r.bitsAt(r.pos, n)
}

// Take returns the next n bits (n <= 32), MSB-first, and advances the
// position by n. Bits beyond the end of the buffer are returned as zero,
// but the position still advances so that subsequent byte alignment is
// correct.
func (r *Reader) Take(n int) uint32 {
	v := r.bitsAt(r.pos, n)
	r.pos += n
	return v
}

// bitsAt reads n bits (n <= 32) starting at bit offset pos, returning zero
// for any bit beyond the end of buf.
func (r *Reader) bitsAt(pos, n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		bit := pos + i
		byteIdx := bit / 8
		var b uint32
		if byteIdx < len(r.buf) {
			shift := 7 - uint(bit%8)
			b = uint32(r.buf[byteIdx]>>shift) & 1
		}
		v = v<<1 | b
	}
	return v
}

// RemainingBits returns the number of bits left before the end of the
// buffer. This can be negative if Take has been called past the end.
func (r *Reader) RemainingBits() int {
	return r.totalBits() - r.pos
}

// PositionBits returns the current bit offset from the start of the buffer.
func (r *Reader) PositionBits() int {
	return r.pos
}

// SkipToNextByte advances the position to the next byte boundary, doing
// nothing if already aligned.
func (r *Reader) SkipToNextByte() {
	if r.pos%8 != 0 {
		r.pos += 8 - r.pos%8
	}
}

// BytePosition returns the index of the byte containing the current bit
// position, i.e. ceil-free byte index (equal to PositionBits()/8).
func (r *Reader) BytePosition() int {
	return r.pos / 8
}

// AtEnd reports whether the reader has consumed the entire buffer (or
// advanced past its end).
func (r *Reader) AtEnd() bool {
	return r.pos >= r.totalBits()
}
