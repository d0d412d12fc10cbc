/*
NAME
  displayset.go

DESCRIPTION
  displayset.go implements the DisplaySetBuilder: on end-of-display-set,
  it snapshots DecoderState into an immutable output record, per spec.md
  section 4.7.

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

// Rect is one positioned, palette-indexed bitmap within a DisplaySet,
// ready for a consumer to expand against Palette and composite.
type Rect struct {
	X, Y          int32
	Width, Height int32

	// Rowstride is the number of bytes per row of Data; always equal to
	// Width for this decoder.
	Rowstride int32

	// PaletteBitsCount is the source region's bit depth (2, 4, or 8).
	PaletteBitsCount uint8

	// Palette has length 1<<PaletteBitsCount, ARGB32 entries indexed by
	// a Data byte.
	Palette []ARGB32

	// Data holds Width*Height palette indices, one per pixel, row-major.
	Data []byte
}

// DisplaySet is an immutable snapshot of a complete, displayable DVB
// subtitle page, emitted when an end-of-display-set segment is decoded.
type DisplaySet struct {
	PTS                uint64
	PageTimeOutSeconds uint8
	DisplayDef         DisplayDefinition
	Rects              []Rect
}

// buildDisplaySet snapshots s into a DisplaySet with the given pts, per
// spec.md section 4.7. Iteration order follows s.displayList (the
// RegionDisplay list order); regions referenced by a RegionDisplay that no
// longer exist are skipped, trimming the rect count. The decoder state is
// not reset by this call.
func buildDisplaySet(s *DecoderState, pts uint64) *DisplaySet {
	ds := &DisplaySet{
		PTS:                pts,
		PageTimeOutSeconds: s.pageTimeOut,
		DisplayDef:         s.displayDef,
	}

	for _, rd := range s.displayList {
		region, ok := s.regions[rd.RegionID]
		if !ok {
			continue
		}

		clut := s.clutOrDefault(region.ClutID)
		var palette []ARGB32
		switch region.Depth {
		case 2:
			palette = append([]ARGB32(nil), clut.Clut4[:]...)
		case 4:
			palette = append([]ARGB32(nil), clut.Clut16[:]...)
		default:
			palette = append([]ARGB32(nil), clut.Clut256[:]...)
		}

		data := append([]byte(nil), region.Pbuf...)

		ds.Rects = append(ds.Rects, Rect{
			X:                int32(rd.X),
			Y:                int32(rd.Y),
			Width:            int32(region.Width),
			Height:           int32(region.Height),
			Rowstride:        int32(region.Width),
			PaletteBitsCount: region.Depth,
			Palette:          palette,
			Data:             data,
		})
	}

	return ds
}
