/*
NAME
  palette.go

DESCRIPTION
  palette.go provides the DVB subtitle CLUT (colour look-up table) model:
  the fixed default_clut tables, YUV (CCIR 601) to ARGB32 conversion, and
  CLUT entry application as per ETSI EN 300 743 section 10.

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

// ARGB32 is a packed 32-bit colour, (A<<24)|(R<<16)|(G<<8)|B.
type ARGB32 uint32

// RGBA constructs an ARGB32 from separate 8-bit components.
func RGBA(r, g, b, a byte) ARGB32 {
	return ARGB32(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// CLUT is a colour look-up table, holding the three depth-specific palette
// arrays described in spec.md section 3. clutID -1 is reserved for
// DefaultCLUT.
type CLUT struct {
	ID      int16
	Clut4   [4]ARGB32
	Clut16  [16]ARGB32
	Clut256 [256]ARGB32
}

// newCLUT returns a CLUT initialised as a copy of DefaultCLUT, as required
// whenever a new clut_id is first referenced (spec.md section 4.5, CLUT
// definition).
func newCLUT(id int16) *CLUT {
	c := &CLUT{ID: id}
	c.Clut4 = DefaultCLUT.Clut4
	c.Clut16 = DefaultCLUT.Clut16
	c.Clut256 = DefaultCLUT.Clut256
	return c
}

// clipTable is a precomputed saturation table indexed by (value + clipOffset),
// clamping to [0, 255]. This mirrors the reference decoder's offset-indexed
// clip table design: a table lookup is cheaper and branch-free compared to
// min/max at every pixel during YUV conversion.
const clipOffset = 384
const clipSize = 1024

var clipTable = func() [clipSize]byte {
	var t [clipSize]byte
	for i := range t {
		v := i - clipOffset
		switch {
		case v < 0:
			t[i] = 0
		case v > 255:
			t[i] = 255
		default:
			t[i] = byte(v)
		}
	}
	return t
}()

// clip saturates v to [0, 255] via the precomputed clip table.
func clip(v int) byte {
	idx := v + clipOffset
	if idx < 0 {
		idx = 0
	}
	if idx >= clipSize {
		idx = clipSize - 1
	}
	return clipTable[idx]
}

// yuvToRGB converts a (Y, Cr, Cb, A) CLUT entry to an ARGB32 colour using the
// CCIR 601 conversion matrix specified in spec.md section 4.2. alphaField is
// the raw alpha field from the wire; the stored alpha is 255-alphaField,
// except that Y==0 always yields fully transparent (A=0xFF stored as the
// wire "fully transparent" marker per spec, i.e. resulting alpha 0).
func yuvToRGB(y, cr, cb, alphaField byte) ARGB32 {
	if y == 0 {
		return RGBA(0, 0, 0, 0)
	}

	crOff := int(cr) - 128
	cbOff := int(cb) - 128

	rAdd := int(1402*crOff) / 1000
	bAdd := int(1772*cbOff) / 1000
	gAdd := -(int(714136*crOff)/1000000 + int(344136*cbOff)/1000000)

	r := clip(int(y) + rAdd)
	g := clip(int(y) + gAdd)
	b := clip(int(y) + bAdd)
	a := 255 - alphaField

	return RGBA(r, g, b, a)
}

// DefaultCLUT is the process-wide, read-only default CLUT defined in
// spec.md section 6. It is computed once at package initialisation and
// never mutated.
var DefaultCLUT = buildDefaultCLUT()

func buildDefaultCLUT() *CLUT {
	c := &CLUT{ID: -1}

	// clut4: transparent, white, black, 50% grey.
	c.Clut4[0] = RGBA(0, 0, 0, 0)
	c.Clut4[1] = RGBA(255, 255, 255, 255)
	c.Clut4[2] = RGBA(0, 0, 0, 255)
	c.Clut4[3] = RGBA(127, 127, 127, 255)

	// clut16: entry 0 transparent, entries 1-15 derived from the low three
	// bits (RGB) with full or half intensity.
	c.Clut16[0] = RGBA(0, 0, 0, 0)
	for i := 1; i < 16; i++ {
		full := i < 8
		comp := func(bit int) byte {
			if bit == 0 {
				return 0
			}
			if full {
				return 255
			}
			return 127
		}
		r := comp(i & 0x1)
		g := comp((i >> 1) & 0x1)
		b := comp((i >> 2) & 0x1)
		c.Clut16[i] = RGBA(r, g, b, 255)
	}

	// clut256: entry 0 transparent; entries 1-7 are a simple full-on/off
	// triple at reduced alpha; entries 8-255 derived per the four cases
	// of (i & 0x88), each pulling two RGB triples from bits 0-2 and bits
	// 4-6.
	c.Clut256[0] = RGBA(0, 0, 0, 0)
	for i := 1; i < 8; i++ {
		bit := func(n uint) int {
			return (i >> n) & 1
		}
		r := byte(255 * bit(0))
		g := byte(255 * bit(1))
		b := byte(255 * bit(2))
		c.Clut256[i] = RGBA(r, g, b, 63)
	}
	for i := 8; i < 256; i++ {
		bit := func(n uint) int {
			return (i >> n) & 1
		}
		var r, g, b int
		var a byte
		switch i & 0x88 {
		case 0x00:
			r = 85*bit(0) + 170*bit(4)
			g = 85*bit(1) + 170*bit(5)
			b = 85*bit(2) + 170*bit(6)
			a = 255
		case 0x08:
			r = 85*bit(0) + 170*bit(4)
			g = 85*bit(1) + 170*bit(5)
			b = 85*bit(2) + 170*bit(6)
			a = 127
		case 0x80:
			r = 127 + 43*bit(0) + 85*bit(4)
			g = 127 + 43*bit(1) + 85*bit(5)
			b = 127 + 43*bit(2) + 85*bit(6)
			a = 255
		case 0x88:
			r = 43*bit(0) + 85*bit(4)
			g = 43*bit(1) + 85*bit(5)
			b = 43*bit(2) + 85*bit(6)
			a = 255
		}
		c.Clut256[i] = RGBA(byte(r), byte(g), byte(b), a)
	}

	return c
}
