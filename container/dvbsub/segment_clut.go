/*
NAME
  segment_clut.go

DESCRIPTION
  segment_clut.go parses the CLUT definition segment (0x12), per
  spec.md section 4.5.

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

import "github.com/ausocean/utils/logging"

// CLUT entry depth-flag bits within the flags byte (bits 7:5).
const (
	clutFlagClut4   = 0x80
	clutFlagClut16  = 0x40
	clutFlagClut256 = 0x20
	clutFlagMask    = 0xE0
	fullRangeMask   = 0x01
)

// parseCLUTDefinition parses a CLUT definition segment payload and applies
// it to state, per spec.md section 4.5.
func parseCLUTDefinition(s *DecoderState, payload []byte, log logging.Logger) {
	r := newSegReader(payload)

	clutID := int16(r.u8())
	r.u8() // reserved
	if r.err != nil {
		log.Warning("truncated CLUT definition header")
		return
	}

	clut, _ := s.clut(clutID)

	for r.remaining() >= 3 {
		entryID := r.u8()
		flagsByte := r.u8()
		if r.err != nil {
			break
		}
		depthFlags := flagsByte & clutFlagMask
		fullRange := flagsByte&fullRangeMask != 0

		var y, cr, cb, a byte
		if fullRange {
			y = r.u8()
			cr = r.u8()
			cb = r.u8()
			a = r.u8()
		} else {
			b0 := r.u8()
			b1 := r.u8()
			if r.err != nil {
				break
			}
			v := uint16(b0)<<8 | uint16(b1)
			y6 := byte((v >> 10) & 0x3F)
			cr4 := byte((v >> 6) & 0xF)
			cb4 := byte((v >> 2) & 0xF)
			a2 := byte(v & 0x3)
			y = y6 << 2
			cr = cr4 << 4
			cb = cb4 << 4
			a = a2 << 6
		}
		if r.err != nil {
			break
		}

		if depthFlags == 0 {
			log.Warning("CLUT entry with no depth flags set, rejecting", "entry_id", entryID)
			continue
		}

		colour := yuvToRGB(y, cr, cb, a)
		if depthFlags&clutFlagClut4 != 0 && int(entryID) < len(clut.Clut4) {
			clut.Clut4[entryID] = colour
		}
		if depthFlags&clutFlagClut16 != 0 && int(entryID) < len(clut.Clut16) {
			clut.Clut16[entryID] = colour
		}
		if depthFlags&clutFlagClut256 != 0 {
			clut.Clut256[entryID] = colour
		}
	}
}
