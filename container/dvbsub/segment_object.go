/*
NAME
  segment_object.go

DESCRIPTION
  segment_object.go parses the object data segment (0x13), per spec.md
  section 4.5.

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

// Object data coding methods, per ETSI EN 300 743 section 7.2.5.
const (
	codingMethodPixels = 0
	codingMethodString = 1
)

// parseObjectData parses an object data segment payload and, for
// coding_method 0 (pixel data), decodes its top and bottom fields into
// every region that displays the object, per spec.md section 4.5.
func parseObjectData(s *DecoderState, payload []byte, log logging.Logger) {
	r := newSegReader(payload)

	objectID := r.u16()
	flagsByte := r.u8()
	if r.err != nil {
		log.Warning("truncated object data header")
		return
	}
	codingMethod := (flagsByte >> 6) & 0x3
	nonModifying := (flagsByte>>5)&0x1 != 0

	obj, known := s.objects[objectID]
	if !known {
		log.Warning("object data for unknown object, skipping", "object_id", objectID)
		return
	}

	switch codingMethod {
	case codingMethodPixels:
		topLen := int(r.u16())
		bottomLen := int(r.u16())
		if r.err != nil {
			log.Warning("truncated object data field lengths", "object_id", objectID)
			return
		}
		if topLen < 0 || topLen > r.remaining() {
			log.Warning("object data top field length overruns segment", "object_id", objectID)
			return
		}
		top := r.bytes(topLen)

		var bottom []byte
		if bottomLen > 0 {
			if bottomLen > r.remaining() {
				log.Warning("object data bottom field length overruns segment", "object_id", objectID)
				bottomLen = r.remaining()
			}
			bottom = r.bytes(bottomLen)
		} else {
			// No bottom field: reuse the top field data, per the
			// documented "no bottom field" optimisation (SPEC_FULL.md).
			bottom = top
		}

		for _, disp := range obj.Displays {
			region, ok := s.regions[disp.RegionID]
			if !ok {
				continue
			}
			interpretPixelBlock(region, disp, top, TopField, nonModifying, log)
			interpretPixelBlock(region, disp, bottom, BottomField, nonModifying, log)
		}

	case codingMethodString:
		log.Warning("object data with coding_method=1 (string of characters) is unsupported", "object_id", objectID)

	default:
		log.Warning("object data with malformed coding_method", "object_id", objectID, "coding_method", codingMethod)
	}
}
