/*
NAME
  options.go

DESCRIPTION
  options.go provides option functions that can be passed to NewDecoder,
  mirroring the functional-options pattern used by
  container/mts.NewEncoder.

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

// Log categories, per spec.md section 6.
const (
	CategoryGeneral = "general"
	CategoryPage    = "page"
	CategoryRegion  = "region"
	CategoryCLUT    = "clut"
	CategoryObject  = "object"
	CategoryPixel   = "pixel"
	CategoryRunlen  = "runlen"
	CategoryDisplay = "display"
	CategoryStream  = "stream"
	CategoryPacket  = "packet"
)

// WithLogCategories restricts segment-dispatch logging to the given
// categories; if never called, all categories are logged. Category
// filtering here covers the top-level "which segment type arrived"
// logging in dispatchSegment; it does not suppress warnings or errors,
// which always log regardless of category (a malformed segment is worth
// knowing about even with PAGE logging turned off).
func WithLogCategories(categories ...string) func(*Decoder) error {
	return func(d *Decoder) error {
		set := make(map[string]bool, len(categories))
		for _, c := range categories {
			set[c] = true
		}
		d.categories = set
		return nil
	}
}

// categoryEnabled reports whether cat should be logged, per any
// WithLogCategories restriction (nil/empty means "log everything").
func (d *Decoder) categoryEnabled(cat string) bool {
	if len(d.categories) == 0 {
		return true
	}
	return d.categories[cat]
}

// segmentCategory maps a segment type byte to its logging category.
func segmentCategory(segType byte) string {
	switch segType {
	case segPageComposition:
		return CategoryPage
	case segRegionComposition:
		return CategoryRegion
	case segCLUTDefinition:
		return CategoryCLUT
	case segObjectData:
		return CategoryObject
	case segDisplayDefinition, segEndOfDisplaySet:
		return CategoryDisplay
	default:
		return CategoryGeneral
	}
}
