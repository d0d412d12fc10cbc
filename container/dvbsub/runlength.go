/*
NAME
  runlength.go

DESCRIPTION
  runlength.go implements the three DVB subtitle pixel run-length
  grammars (2-bit, 4-bit, and 8-bit), per ETSI EN 300 743 sections
  7.2.5.2-7.2.5.4 and spec.md section 4.3.

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
	"github.com/ausocean/dvbsub/container/dvbsub/bits"
	"github.com/ausocean/utils/logging"
)

// decode2Bit decodes a 2-bit pixel code run-length string from br into
// dst, returning the number of pixels written. nonModifying suppresses
// writes where the post-map-table index equals 1 (the "non-modifying
// colour" pseudo-transparency). mapTable, if non-nil, remaps the decoded
// 2-bit index before writing. The source cursor is left at the next byte
// boundary after the terminating code.
func decode2Bit(dst []byte, br *bits.Reader, nonModifying bool, mapTable []byte) int {
	pos := 0
	for {
		code := br.Take(2)
		var run, idx int
		if code != 0 {
			run, idx = 1, int(code)
		} else if br.Take(1) == 1 {
			run, idx = int(br.Take(3))+3, int(br.Take(2))
		} else if br.Take(1) == 1 {
			run, idx = 1, 0
		} else {
			switch br.Take(2) {
			case 0:
				br.SkipToNextByte()
				return pos
			case 1:
				run, idx = 2, 0
			case 2:
				run, idx = int(br.Take(4))+12, int(br.Take(2))
			case 3:
				run, idx = int(br.Take(8))+29, int(br.Take(2))
			}
		}
		pos += writeRun(dst, pos, run, idx, nonModifying, mapTable)
	}
}

// decode4Bit decodes a 4-bit pixel code run-length string; see decode2Bit.
func decode4Bit(dst []byte, br *bits.Reader, nonModifying bool, mapTable []byte) int {
	pos := 0
	for {
		code := br.Take(4)
		var run, idx int
		if code != 0 {
			run, idx = 1, int(code)
		} else if br.Take(1) == 0 {
			r := int(br.Take(3))
			if r == 0 {
				br.SkipToNextByte()
				return pos
			}
			run, idx = r+2, 0
		} else if br.Take(1) == 0 {
			run, idx = int(br.Take(2))+4, int(br.Take(4))
		} else {
			switch br.Take(2) {
			case 0:
				run, idx = 1, 0
			case 1:
				run, idx = 2, 0
			case 2:
				run, idx = int(br.Take(4))+9, int(br.Take(4))
			case 3:
				run, idx = int(br.Take(8))+25, int(br.Take(4))
			}
		}
		pos += writeRun(dst, pos, run, idx, nonModifying, mapTable)
	}
}

// decode8Bit decodes an 8-bit pixel code run-length string; see
// decode2Bit. A run value under 3 in the two-byte form is malformed per
// ETSI EN 300 743, but is logged and accepted rather than rejected, per
// spec.md section 4.3.
func decode8Bit(dst []byte, br *bits.Reader, nonModifying bool, mapTable []byte, log logging.Logger) int {
	pos := 0
	for {
		code := br.Take(8)
		var run, idx int
		if code != 0 {
			run, idx = 1, int(code)
		} else if br.Take(1) == 0 {
			r := int(br.Take(7))
			if r == 0 {
				br.SkipToNextByte()
				return pos
			}
			run, idx = r, 0
		} else {
			run, idx = int(br.Take(7)), int(br.Take(8))
			if run < 3 {
				log.Warning("8-bit run-length code has run < 3", "run", run)
			}
		}
		pos += writeRun(dst, pos, run, idx, nonModifying, mapTable)
	}
}

// writeRun applies the common post-processing shared by all three
// grammars: clamp run to the remaining destination, apply the map table,
// skip the write for the non-modifying colour, and fill. It returns the
// number of destination bytes actually advanced (the clamped run).
func writeRun(dst []byte, pos, run, idx int, nonModifying bool, mapTable []byte) int {
	remaining := len(dst) - pos
	if remaining < 0 {
		remaining = 0
	}
	if run > remaining {
		run = remaining
	}
	if mapTable != nil && idx >= 0 && idx < len(mapTable) {
		idx = int(mapTable[idx])
	}
	if !(nonModifying && idx == 1) {
		for i := 0; i < run; i++ {
			dst[pos+i] = byte(idx)
		}
	}
	return run
}
