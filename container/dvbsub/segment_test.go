/*
NAME
  segment_test.go

DESCRIPTION
  segment_test.go tests the individual segment parsers directly against
  their payload bytes, independent of PES/segment framing.

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

import "testing"

func newTestState() *DecoderState {
	return newDecoderState(newTestLogger())
}

func TestParsePageCompositionBasic(t *testing.T) {
	s := newTestState()
	parsePageComposition(s, []byte{0x05, 0x00}, newTestLogger())
	if s.pageTimeOut != 5 {
		t.Errorf("pageTimeOut = %d, want 5", s.pageTimeOut)
	}
	if len(s.displayList) != 0 {
		t.Errorf("len(displayList) = %d, want 0", len(s.displayList))
	}
}

func TestParsePageCompositionReusesRegionDisplayPointerIdentity(t *testing.T) {
	s := newTestState()
	parsePageComposition(s, []byte{0x05, 0x00, 0x02, 0x00, 0x00, 0x10, 0x00, 0x20}, newTestLogger())
	if len(s.displayList) != 1 {
		t.Fatalf("len(displayList) = %d, want 1", len(s.displayList))
	}
	first := s.displayList[0]

	// Second page composition, same region_id=2 but a new position.
	parsePageComposition(s, []byte{0x05, 0x00, 0x02, 0x00, 0x00, 0x30, 0x00, 0x40}, newTestLogger())
	if len(s.displayList) != 1 {
		t.Fatalf("len(displayList) after second page = %d, want 1", len(s.displayList))
	}
	if s.displayList[0] != first {
		t.Error("RegionDisplay pointer identity was not preserved across page compositions for the same region_id")
	}
	if s.displayList[0].X != 0x0030 {
		t.Errorf("X = 0x%x, want 0x0030 (updated by the second page composition)", s.displayList[0].X)
	}
}

func TestParseRegionCompositionNewRegionForcesFill(t *testing.T) {
	s := newTestState()
	log := newTestLogger()
	payload := []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x04, 0x04, 0x00, 0x40} // fill_flag unset in byte 1.
	parseRegionComposition(s, payload, log)

	region, ok := s.regions[0]
	if !ok {
		t.Fatal("region 0 was not created")
	}
	if region.Width != 4 || region.Height != 4 {
		t.Fatalf("dims = %dx%d, want 4x4", region.Width, region.Height)
	}
	if region.Depth != 2 {
		t.Errorf("Depth = %d, want 2", region.Depth)
	}
	if region.BGColor != 1 {
		t.Errorf("BGColor = %d, want 1", region.BGColor)
	}
	for i, v := range region.Pbuf {
		if v != 1 {
			t.Fatalf("Pbuf[%d] = %d, want 1 (new region forces fill)", i, v)
		}
	}
}

func TestParseRegionCompositionResizeForcesRefill(t *testing.T) {
	s := newTestState()
	log := newTestLogger()

	// First: 2x2 region, bgcolor 1, filled.
	parseRegionComposition(s, []byte{0x00, 0x08, 0x00, 0x02, 0x00, 0x02, 0x04, 0x00, 0x40}, log)
	region := s.regions[0]
	if len(region.Pbuf) != 4 {
		t.Fatalf("len(Pbuf) = %d, want 4", len(region.Pbuf))
	}

	// Second: same id, now 4x4, fill_flag unset, bgcolor 2 -> still must
	// refill because dimensions changed.
	parseRegionComposition(s, []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x04, 0x04, 0x00, 0x80}, log)
	if len(region.Pbuf) != 16 {
		t.Fatalf("len(Pbuf) after resize = %d, want 16", len(region.Pbuf))
	}
	for i, v := range region.Pbuf {
		if v != 2 {
			t.Fatalf("Pbuf[%d] = %d, want 2 (resize forces refill with new bgcolor)", i, v)
		}
	}
}

func TestParseRegionCompositionObjectRecord(t *testing.T) {
	s := newTestState()
	log := newTestLogger()

	regionPayload := []byte{0x00, 0x08, 0x00, 0x04, 0x00, 0x04, 0x04, 0x00, 0x40}
	// object record: object_id=0x0001, packed = type(2 bits)<<14 |
	// x_pos(12 bits)<<2; bitmap type (0) at x_pos=5 -> packed = 5<<2 =
	// 0x0014. y_pos = 0x0003.
	objRecord := []byte{0x00, 0x01, 0x00, 0x14, 0x00, 0x03}
	parseRegionComposition(s, append(append([]byte{}, regionPayload...), objRecord...), log)

	region := s.regions[0]
	if len(region.Displays) != 1 {
		t.Fatalf("len(Displays) = %d, want 1", len(region.Displays))
	}
	d := region.Displays[0]
	if d.ObjectID != 1 {
		t.Errorf("ObjectID = %d, want 1", d.ObjectID)
	}
	if d.X != 5 {
		t.Errorf("X = %d, want 5", d.X)
	}
	if d.Y != 3 {
		t.Errorf("Y = %d, want 3", d.Y)
	}
	obj, ok := s.objects[1]
	if !ok {
		t.Fatal("object 1 was not created")
	}
	if len(obj.Displays) != 1 || obj.Displays[0] != d {
		t.Error("object's display list does not contain the same ObjectDisplay node")
	}
}

func TestParseCLUTDefinitionFullRange(t *testing.T) {
	s := newTestState()
	log := newTestLogger()
	// clut_id=0, reserved=0, entry_id=1, flags=0xE1 (clut4|clut16|clut256,
	// full_range), Y=0xFF Cr=0x80 Cb=0x80 A=0x00.
	payload := []byte{0x00, 0x00, 0x01, 0xE1, 0xFF, 0x80, 0x80, 0x00}
	parseCLUTDefinition(s, payload, log)

	clut, ok := s.cluts[0]
	if !ok {
		t.Fatal("clut 0 was not created")
	}
	want := yuvToRGB(0xFF, 0x80, 0x80, 0x00)
	if clut.Clut4[1] != want {
		t.Errorf("Clut4[1] = 0x%08x, want 0x%08x", clut.Clut4[1], want)
	}
	if clut.Clut16[1] != want {
		t.Errorf("Clut16[1] = 0x%08x, want 0x%08x", clut.Clut16[1], want)
	}
	if clut.Clut256[1] != want {
		t.Errorf("Clut256[1] = 0x%08x, want 0x%08x", clut.Clut256[1], want)
	}
}

func TestParseCLUTDefinitionCompactForm(t *testing.T) {
	s := newTestState()
	log := newTestLogger()
	// entry_id=2, flags byte = 0x20 (clut256 only, compact form:
	// full_range bit clear). Compact value packs Y:6,Cr:4,Cb:4,A:2 into
	// two bytes: choose v = 0b111111_0000_0000_00 = 0xFC00.
	payload := []byte{0x00, 0x00, 0x02, 0x20, 0xFC, 0x00}
	parseCLUTDefinition(s, payload, log)

	clut := s.cluts[0]
	want := yuvToRGB(0xFC, 0x00, 0x00, 0x00)
	if clut.Clut256[2] != want {
		t.Errorf("Clut256[2] = 0x%08x, want 0x%08x", clut.Clut256[2], want)
	}
}

func TestParseCLUTDefinitionRejectsZeroDepthFlags(t *testing.T) {
	s := newTestState()
	log := newTestLogger()
	payload := []byte{0x00, 0x00, 0x01, 0x01, 0xFF, 0x80, 0x80, 0x00}
	parseCLUTDefinition(s, payload, log)

	clut := s.cluts[0]
	if clut.Clut4[1] != DefaultCLUT.Clut4[1] {
		t.Error("entry with no depth flags set should have been rejected, not applied")
	}
}

func TestParseDisplayDefinitionDefaults(t *testing.T) {
	s := newTestState()
	log := newTestLogger()
	// info_byte version=0, no window flag; width_field=719 -> 720,
	// height_field=575 -> 576.
	payload := []byte{0x00, 0x02, 0xCF, 0x02, 0x3F}
	parseDisplayDefinition(s, payload, log)
	if s.displayDef.Width != 720 || s.displayDef.Height != 576 {
		t.Errorf("dims = %dx%d, want 720x576", s.displayDef.Width, s.displayDef.Height)
	}
	if s.displayDef.HasWindow {
		t.Error("HasWindow = true, want false")
	}
}

func TestParseDisplayDefinitionDeduplicatesSameVersion(t *testing.T) {
	s := newTestState()
	log := newTestLogger()
	payload := []byte{0x00, 0x02, 0xCF, 0x02, 0x3F}
	parseDisplayDefinition(s, payload, log)
	first := s.displayDef

	// Same version (0), different (bogus) dims: must be a no-op.
	parseDisplayDefinition(s, []byte{0x00, 0x00, 0x00, 0x00, 0x00}, log)
	if s.displayDef != first {
		t.Error("display definition changed despite matching version")
	}
}

func TestParseObjectDataUnknownObjectLogsAndSkips(t *testing.T) {
	s := newTestState()
	log := newTestLogger()
	parseObjectData(s, []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}, log)
	found := false
	for _, e := range log.entries {
		if e == "object data for unknown object, skipping" {
			found = true
		}
	}
	if !found {
		t.Error("expected a \"skipping\" warning for an unknown object")
	}
}

func TestParseObjectDataNoBottomFieldReusesTop(t *testing.T) {
	s := newTestState()
	log := newTestLogger()

	region := &Region{ID: 0, Width: 4, Height: 4, Depth: 2, Pbuf: make([]byte, 16)}
	s.regions[0] = region
	obj := &Object{ID: 1, Type: ObjectBitmap}
	s.objects[1] = obj
	disp := s.addObjectDisplay(region, obj, 0, 0, false, 0, 0)
	_ = disp

	// coding_method=0, non_modifying_color=0; top_field_len=2,
	// bottom_field_len=0 -> decoder must reuse the top slice for the
	// bottom field.
	payload := []byte{0x00, 0x01, 0x00, 0x00, 0x02, 0x00, 0x00, opcode2Bit, 0x55}
	parseObjectData(s, payload, log)

	for i, v := range region.Pbuf[:4] {
		if v != 1 {
			t.Errorf("top row Pbuf[%d] = %d, want 1", i, v)
		}
	}
	for i := 4; i < 8; i++ {
		if region.Pbuf[i] != 1 {
			t.Errorf("bottom row (reused top) Pbuf[%d] = %d, want 1", i, region.Pbuf[i])
		}
	}
}
