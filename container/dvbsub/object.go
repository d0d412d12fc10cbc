/*
NAME
  object.go

DESCRIPTION
  object.go defines the Object and ObjectDisplay entities and the
  RegionDisplay and DisplayDefinition page-level entities, per spec.md
  section 3.

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

// Object type values, per ETSI EN 300 743 section 7.2.4.
const (
	ObjectBitmap             = 0
	ObjectString             = 1
	ObjectStringWithBGColor  = 2
	objectTypeReserved       = 3
)

// Object is a logical bitmap (or, unsupported here, string) referenced by
// one or more regions via ObjectDisplay.
type Object struct {
	ID   uint16
	Type uint8

	// Displays is the list of ObjectDisplays embedding this object, in
	// head-insert order, mirroring Region.Displays.
	Displays []*ObjectDisplay
}

// pushDisplay head-inserts d into the object's display_list.
func (o *Object) pushDisplay(d *ObjectDisplay) {
	o.Displays = append([]*ObjectDisplay{d}, o.Displays...)
}

// removeDisplay removes d from the object's display_list by identity.
// Reports whether the list is now empty.
func (o *Object) removeDisplay(d *ObjectDisplay) (empty bool) {
	for i, od := range o.Displays {
		if od == d {
			o.Displays = append(o.Displays[:i], o.Displays[i+1:]...)
			break
		}
	}
	return len(o.Displays) == 0
}

// ObjectDisplay places an Object inside a Region at (X, Y) in region
// coordinates. It belongs simultaneously to exactly one Region's
// display_list and exactly one Object's display_list (the same node in
// both, conceptually); FGColor/BGColor only apply to ObjectString and
// ObjectStringWithBGColor types, which this decoder does not render.
type ObjectDisplay struct {
	ObjectID uint16
	RegionID uint8
	X        uint16
	Y        uint16
	HasColor bool
	FGColor  byte
	BGColor  byte
}

// RegionDisplay places a Region on the page at (X, Y) in page coordinates.
type RegionDisplay struct {
	RegionID uint8
	X        uint16
	Y        uint16
}

// DisplayDefinition describes the optional page-wide window, per spec.md
// section 3. Version -1 means "never seen"; Width/Height default to
// 720x576 until a display definition segment arrives.
type DisplayDefinition struct {
	Version int8
	Width   uint16
	Height  uint16

	HasWindow  bool
	WindowX    uint16
	WindowY    uint16
	WindowW    uint16
	WindowH    uint16
}

// defaultDisplayDefinition returns the initial DisplayDefinition, per
// spec.md section 3 (display_width=720, display_height=576, version=-1).
func defaultDisplayDefinition() DisplayDefinition {
	return DisplayDefinition{
		Version: -1,
		Width:   720,
		Height:  576,
	}
}
