/*
NAME
  region.go

DESCRIPTION
  region.go defines the Region entity: a rectangular palette-indexed pixel
  surface, and its singly-linked (in spirit; slice-backed here) list of
  ObjectDisplays, per spec.md section 3.

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

// Region is a rectangular raster surface addressed by region_id, holding
// one palette index per pixel in Pbuf. Regions persist across display sets
// and are mutated in place by successive region composition segments.
//
// As per the design notes, the reference decoder's raw-pointer
// cross-linked lists (Region.display_list, Object.display_list, sharing
// the same ObjectDisplay nodes) are represented here with stable handles
// (RegionID/ObjectID) and slices of *ObjectDisplay, rather than raw
// pointers, so that unlinking a display from both lists is a simple
// lookup-by-identity rather than pointer surgery.
type Region struct {
	ID      uint8
	Width   uint16
	Height  uint16
	Depth   uint8 // 2, 4, or 8.
	ClutID  int16 // -1 means DefaultCLUT.
	BGColor byte
	Pbuf    []byte // len == Width*Height, one palette index per pixel.

	// Displays is this region's display_list, in head-insert order: the
	// most recently added ObjectDisplay is Displays[0]. Preserved this way
	// to match the reference decoder's output ordering.
	Displays []*ObjectDisplay
}

// clampDepth clamps an out-of-range depth to 4bpp, matching the reference
// decoder's behaviour documented in spec.md section 3 and SPEC_FULL.md.
func clampDepth(depth uint8, log logging.Logger) uint8 {
	switch depth {
	case 2, 4, 8:
		return depth
	default:
		log.Warning("illegal region depth, clamping to 4", "depth", depth)
		return 4
	}
}

// resize reallocates Pbuf if width or height changed, and reports whether
// a reallocation occurred. On reallocation the new buffer is zero-filled;
// the caller (region composition parser) is responsible for the
// bgcolor-fill-before-blit invariant.
func (r *Region) resize(width, height uint16) (resized bool) {
	if r.Width == width && r.Height == height && len(r.Pbuf) == int(width)*int(height) {
		return false
	}
	r.Width = width
	r.Height = height
	r.Pbuf = make([]byte, int(width)*int(height))
	return true
}

// fill sets every pixel in Pbuf to the region's BGColor.
func (r *Region) fill() {
	for i := range r.Pbuf {
		r.Pbuf[i] = r.BGColor
	}
}

// clearDisplays detaches and returns the region's current display_list,
// resetting Displays to empty. The caller is responsible for unlinking the
// returned displays from their owning Objects.
func (r *Region) clearDisplays() []*ObjectDisplay {
	old := r.Displays
	r.Displays = nil
	return old
}

// pushDisplay head-inserts d into the region's display_list.
func (r *Region) pushDisplay(d *ObjectDisplay) {
	r.Displays = append([]*ObjectDisplay{d}, r.Displays...)
}
