/*
NAME
  palette_test.go

DESCRIPTION
  palette_test.go tests the default CLUT tables and YUV-to-RGB
  conversion against the literal bit patterns in spec.md section 6.

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

func TestDefaultCLUT4(t *testing.T) {
	cases := []struct {
		idx  int
		want ARGB32
	}{
		{0, RGBA(0, 0, 0, 0)},
		{1, RGBA(255, 255, 255, 255)},
		{2, RGBA(0, 0, 0, 255)},
		{3, RGBA(127, 127, 127, 255)},
	}
	for _, c := range cases {
		if got := DefaultCLUT.Clut4[c.idx]; got != c.want {
			t.Errorf("Clut4[%d] = 0x%08x, want 0x%08x", c.idx, got, c.want)
		}
	}
}

func TestDefaultCLUT16EntryZeroTransparent(t *testing.T) {
	if got := DefaultCLUT.Clut16[0]; got != RGBA(0, 0, 0, 0) {
		t.Errorf("Clut16[0] = 0x%08x, want transparent", got)
	}
}

func TestDefaultCLUT16FullIntensity(t *testing.T) {
	// Entry 7 = bits 0,1,2 all set, i < 8 -> full intensity white.
	if got, want := DefaultCLUT.Clut16[7], RGBA(255, 255, 255, 255); got != want {
		t.Errorf("Clut16[7] = 0x%08x, want 0x%08x", got, want)
	}
}

func TestDefaultCLUT16HalfIntensity(t *testing.T) {
	// Entry 15 = bits 0,1,2 all set, i >= 8 -> half intensity.
	if got, want := DefaultCLUT.Clut16[15], RGBA(127, 127, 127, 255); got != want {
		t.Errorf("Clut16[15] = 0x%08x, want 0x%08x", got, want)
	}
}

func TestDefaultCLUT256LowEntries(t *testing.T) {
	// i in [1,7]: R,G,B in {0,255} by bits 0,1,2; A=63.
	if got, want := DefaultCLUT.Clut256[1], RGBA(255, 0, 0, 63); got != want {
		t.Errorf("Clut256[1] = 0x%08x, want 0x%08x", got, want)
	}
	if got, want := DefaultCLUT.Clut256[7], RGBA(255, 255, 255, 63); got != want {
		t.Errorf("Clut256[7] = 0x%08x, want 0x%08x", got, want)
	}
}

func TestDefaultCLUT256Switch0x00(t *testing.T) {
	// i=16 (0b00010000): i&0x88 = 0x00, bit4=1, bits0-2=0 -> R=170, G=B=0,
	// A=255.
	if got, want := DefaultCLUT.Clut256[16], RGBA(170, 0, 0, 255); got != want {
		t.Errorf("Clut256[16] = 0x%08x, want 0x%08x", got, want)
	}
}

func TestDefaultCLUT256Switch0x08(t *testing.T) {
	// i=9 (0b00001001): i&0x88 = 0x08 -> same RGB formula as 0x00, A=127.
	// bit0=1, bit4=0 -> R=85, G=B=0.
	if got, want := DefaultCLUT.Clut256[9], RGBA(85, 0, 0, 127); got != want {
		t.Errorf("Clut256[9] = 0x%08x, want 0x%08x", got, want)
	}
}

func TestDefaultCLUT256Switch0x80(t *testing.T) {
	// i=0x80: i&0x88=0x80, all bits 0,4 zero -> R=G=B=127, A=255.
	if got, want := DefaultCLUT.Clut256[0x80], RGBA(127, 127, 127, 255); got != want {
		t.Errorf("Clut256[0x80] = 0x%08x, want 0x%08x", got, want)
	}
}

func TestDefaultCLUT256Switch0x88(t *testing.T) {
	// i=0x88: i&0x88=0x88, bits 0,4 zero -> R=G=B=0, A=255.
	if got, want := DefaultCLUT.Clut256[0x88], RGBA(0, 0, 0, 255); got != want {
		t.Errorf("Clut256[0x88] = 0x%08x, want 0x%08x", got, want)
	}
}

func TestYUVToRGBZeroLumaFullyTransparent(t *testing.T) {
	if got, want := yuvToRGB(0, 200, 50, 10), RGBA(0, 0, 0, 0); got != want {
		t.Errorf("yuvToRGB(0, ...) = 0x%08x, want 0x%08x", got, want)
	}
}

func TestYUVToRGBGrey(t *testing.T) {
	// Neutral chroma (128,128) leaves R=G=B=Y; alpha = 255-alphaField.
	got := yuvToRGB(200, 128, 128, 55)
	want := RGBA(200, 200, 200, 200)
	if got != want {
		t.Errorf("yuvToRGB(200,128,128,55) = 0x%08x, want 0x%08x", got, want)
	}
}

func TestClipSaturates(t *testing.T) {
	if got := clip(300); got != 255 {
		t.Errorf("clip(300) = %d, want 255", got)
	}
	if got := clip(-50); got != 0 {
		t.Errorf("clip(-50) = %d, want 0", got)
	}
	if got := clip(100); got != 100 {
		t.Errorf("clip(100) = %d, want 100", got)
	}
}
