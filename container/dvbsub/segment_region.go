/*
NAME
  segment_region.go

DESCRIPTION
  segment_region.go parses the region composition segment (0x11), per
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

const fillFlagMask = 0x08 // bit 3 of the region composition's flags byte.

// parseRegionComposition parses a region composition segment payload and
// applies it to state, per spec.md section 4.5.
func parseRegionComposition(s *DecoderState, payload []byte, log logging.Logger) {
	r := newSegReader(payload)

	regionID := r.u8()
	flagsByte := r.u8()
	fillFlag := flagsByte&fillFlagMask != 0
	width := r.u16()
	height := r.u16()
	depthByte := r.u8()
	depthEnc := (depthByte >> 2) & 0x7
	clutID := int16(r.u8())
	bgByte := r.u8()

	if r.err != nil {
		log.Warning("truncated region composition header", "region_id", regionID)
		return
	}

	depth := clampDepth(1<<depthEnc, log)

	var bgcolor byte
	switch depth {
	case 8:
		bgcolor = bgByte
	case 4:
		bgcolor = bgByte >> 4
	case 2:
		bgcolor = (bgByte >> 6) & 0x3
	}

	region, existed := s.region(regionID)
	if !existed {
		fillFlag = true
	}
	region.Depth = depth
	region.ClutID = clutID
	region.BGColor = bgcolor

	if resized := region.resize(width, height); resized {
		fillFlag = true
	}
	if fillFlag {
		region.fill()
	}

	// ObjectDisplays are rebuilt on every region composition segment.
	s.clearRegionDisplays(region)

	for r.remaining() >= 6 {
		objectID := uint16(r.u16())
		packed := r.u16()
		yField := r.u16()
		if r.err != nil {
			break
		}
		objType := uint8(packed >> 14)
		xPos := (packed >> 2) & 0xFFF
		yPos := yField & 0x0FFF

		var hasColor bool
		var fg, bg byte
		if objType == ObjectString || objType == ObjectStringWithBGColor {
			fg = r.u8()
			bg = r.u8()
			hasColor = true
			if r.err != nil {
				break
			}
		}

		obj, _ := s.object(objectID, objType)
		obj.Type = objType
		s.addObjectDisplay(region, obj, xPos, yPos, hasColor, fg, bg)
	}
}
