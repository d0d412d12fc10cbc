/*
NAME
  segment_displaydef.go

DESCRIPTION
  segment_displaydef.go parses the display definition segment (0x14), per
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

// windowFlagMask is bit 3 of the display definition's info byte. The
// reference decoder compares this with a bare bitwise AND, without
// normalising to a bool; this module treats any nonzero result as true,
// per SPEC_FULL.md.
const windowFlagMask = 0x08

const minWindowPayloadLen = 13

// parseDisplayDefinition parses a display definition segment payload and
// applies it to state, per spec.md section 4.5. Segments whose version
// matches the current display_def are a no-op (deduplication).
func parseDisplayDefinition(s *DecoderState, payload []byte, log logging.Logger) {
	r := newSegReader(payload)

	infoByte := r.u8()
	if r.err != nil {
		log.Warning("truncated display definition header")
		return
	}
	version := int8(infoByte >> 4)
	if version == s.displayDef.Version {
		return
	}

	widthField := r.u16()
	heightField := r.u16()
	if r.err != nil {
		log.Warning("truncated display definition dimensions")
		return
	}

	dd := DisplayDefinition{
		Version: version,
		Width:   widthField + 1,
		Height:  heightField + 1,
	}

	if infoByte&windowFlagMask != 0 && len(payload) >= minWindowPayloadLen {
		x := r.u16()
		y := r.u16()
		endX := r.u16()
		endY := r.u16()
		if r.err == nil {
			dd.HasWindow = true
			dd.WindowX = x
			dd.WindowY = y
			dd.WindowW = endX - x + 1
			dd.WindowH = endY - y + 1
		}
	}

	s.displayDef = dd
}
