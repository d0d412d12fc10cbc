/*
NAME
  segment_page.go

DESCRIPTION
  segment_page.go parses the page composition segment (0x10), per
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

// pageStateModeChange is the page_state value that triggers a full
// decoder reset (spec.md section 3, Mode Change).
const pageStateModeChange = 2

// parsePageComposition parses a page composition segment payload and
// applies it to state, per spec.md section 4.5.
func parsePageComposition(s *DecoderState, payload []byte, log logging.Logger) {
	r := newSegReader(payload)

	timeOut := r.u8()
	flagsByte := r.u8()
	if r.err != nil {
		log.Warning("truncated page composition header")
		return
	}
	pageState := (flagsByte >> 2) & 0x3

	s.pageTimeOut = timeOut
	log.Debug("page composition", "timeout", timeOut, "page_state", pageState)

	if pageState == pageStateModeChange {
		s.modeChange()
	}

	old := s.displayList
	used := make([]bool, len(old))
	s.displayList = nil

	for r.remaining() >= 6 {
		regionID := r.u8()
		r.u8() // reserved
		x := r.u16()
		y := r.u16()
		if r.err != nil {
			break
		}

		var rd *RegionDisplay
		for i, o := range old {
			if !used[i] && o.RegionID == regionID {
				rd = o
				used[i] = true
				break
			}
		}
		if rd == nil {
			rd = &RegionDisplay{}
		}
		rd.RegionID = regionID
		rd.X = x
		rd.Y = y
		s.displayList = append(s.displayList, rd)
	}
}
