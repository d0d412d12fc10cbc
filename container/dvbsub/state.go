/*
NAME
  state.go

DESCRIPTION
  state.go defines DecoderState, which owns the live set of regions,
  objects, CLUTs, and the current page's display list, and enforces the
  object<->region cross-link invariants described in spec.md sections 3
  and 8.

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

// DecoderState is the live, mutable model of one subtitle decoder
// instance: the regions, objects, and CLUTs that persist across display
// sets, and the page's current region display list and display
// definition.
//
// All segment parsers (segment_*.go) take a *DecoderState and mutate it
// directly, per the design notes' "share a single state to all parsers"
// guidance, rather than each owning a private copy.
type DecoderState struct {
	log logging.Logger

	regions map[uint8]*Region
	objects map[uint16]*Object
	cluts   map[int16]*CLUT

	// displayList is the page's current RegionDisplay list, in page
	// composition segment order.
	displayList []*RegionDisplay

	displayDef  DisplayDefinition
	pageTimeOut uint8
}

// newDecoderState returns a DecoderState with empty entity sets and the
// default display definition.
func newDecoderState(log logging.Logger) *DecoderState {
	return &DecoderState{
		log:        log,
		regions:    make(map[uint8]*Region),
		objects:    make(map[uint16]*Object),
		cluts:      make(map[int16]*CLUT),
		displayDef: defaultDisplayDefinition(),
	}
}

// region returns the region with the given id, creating it if it does not
// exist yet.
func (s *DecoderState) region(id uint8) (*Region, bool) {
	r, ok := s.regions[id]
	if !ok {
		r = &Region{ID: id, ClutID: -1}
		s.regions[id] = r
	}
	return r, ok
}

// object returns the object with the given id, creating it if it does not
// exist yet.
func (s *DecoderState) object(id uint16, typ uint8) (*Object, bool) {
	o, ok := s.objects[id]
	if !ok {
		o = &Object{ID: id, Type: typ}
		s.objects[id] = o
	}
	return o, ok
}

// clut returns the CLUT with the given id, creating it as a copy of
// DefaultCLUT if it does not exist yet (spec.md section 4.5).
func (s *DecoderState) clut(id int16) (*CLUT, bool) {
	c, ok := s.cluts[id]
	if !ok {
		c = newCLUT(id)
		s.cluts[id] = c
	}
	return c, ok
}

// clutOrDefault returns the CLUT for id, falling back to DefaultCLUT
// (without creating an entry) if id is unknown, per spec.md section 3's
// invariant that an unknown CLUT reference falls back to default_clut.
func (s *DecoderState) clutOrDefault(id int16) *CLUT {
	if c, ok := s.cluts[id]; ok {
		return c
	}
	return DefaultCLUT
}

// unlinkObjectDisplay removes d from its owning region's and object's
// display lists, destroying the object if its display list becomes empty
// (spec.md section 3, Lifecycles; section 8, invariant on empty
// display_list implying destruction).
func (s *DecoderState) unlinkObjectDisplay(d *ObjectDisplay) {
	if r, ok := s.regions[d.RegionID]; ok {
		for i, od := range r.Displays {
			if od == d {
				r.Displays = append(r.Displays[:i], r.Displays[i+1:]...)
				break
			}
		}
	}
	if o, ok := s.objects[d.ObjectID]; ok {
		if empty := o.removeDisplay(d); empty {
			delete(s.objects, o.ID)
			s.log.Debug("object destroyed, display list empty", "object_id", o.ID)
		}
	}
}

// clearRegionDisplays detaches region r's display_list and unlinks each
// display from its owning object, destroying orphaned objects. Used by the
// region composition parser before repopulating the list (spec.md section
// 3, Lifecycles: "ObjectDisplays are rebuilt on every region composition
// segment").
func (s *DecoderState) clearRegionDisplays(r *Region) {
	old := r.clearDisplays()
	for _, d := range old {
		if o, ok := s.objects[d.ObjectID]; ok {
			if empty := o.removeDisplay(d); empty {
				delete(s.objects, o.ID)
				s.log.Debug("object destroyed, display list empty", "object_id", o.ID)
			}
		}
	}
}

// addObjectDisplay creates an ObjectDisplay linking object obj into region
// r at (x, y), head-inserting it into both display lists.
func (s *DecoderState) addObjectDisplay(r *Region, obj *Object, x, y uint16, hasColor bool, fg, bg byte) *ObjectDisplay {
	d := &ObjectDisplay{
		ObjectID: obj.ID,
		RegionID: r.ID,
		X:        x,
		Y:        y,
		HasColor: hasColor,
		FGColor:  fg,
		BGColor:  bg,
	}
	r.pushDisplay(d)
	obj.pushDisplay(d)
	return d
}

// modeChange performs the full reset mandated by page_state == 2 (Mode
// Change): all regions, objects, and CLUTs are destroyed. display_def and
// page_time_out persist (spec.md section 3, Invariants; section 4.5).
func (s *DecoderState) modeChange() {
	s.log.Debug("mode change: resetting regions, objects, and cluts")
	s.regions = make(map[uint8]*Region)
	s.objects = make(map[uint16]*Object)
	s.cluts = make(map[int16]*CLUT)
	s.displayList = nil
}
