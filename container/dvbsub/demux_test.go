/*
NAME
  demux_test.go

DESCRIPTION
  demux_test.go tests Feed's PES framing behavior directly: malformed
  start codes, non-subtitle stream ids, and PTS extraction.

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

import (
	"errors"
	"testing"

	"github.com/ausocean/dvbsub/container/dvbsub/pes"
)

func TestFeedRejectsNonPesStartCode(t *testing.T) {
	d := newTestDecoder(t)
	_, err := d.Feed([]byte{0x01, 0x02, 0x03, 0xBD, 0x00, 0x00})
	if !errors.Is(err, ErrNotPes) {
		t.Fatalf("err = %v, want ErrNotPes", err)
	}
}

func TestFeedSkipsWrongStreamID(t *testing.T) {
	d := newTestDecoder(t)
	// stream_id 0xE0 (video), length=2, 2 payload bytes.
	b := []byte{0x00, 0x00, 0x01, 0xE0, 0x00, 0x02, 0xAA, 0xBB}
	n, err := d.Feed(b)
	if n != len(b) {
		t.Errorf("n = %d, want %d", n, len(b))
	}
	if !errors.Is(err, ErrWrongStreamID) {
		t.Fatalf("err = %v, want ErrWrongStreamID", err)
	}
}

func TestFeedRejectsNonSubtitleDataIdentifier(t *testing.T) {
	d := newTestDecoder(t)
	p := &pes.Packet{Segments: []byte{}}
	b := p.Bytes()
	// Corrupt the data-identifier byte (immediately after the PES
	// header) so it no longer reads 0x20.
	b[9] = 0x99
	_, err := d.Feed(b)
	if !errors.Is(err, ErrNotDvbSubtitle) {
		t.Fatalf("err = %v, want ErrNotDvbSubtitle", err)
	}
}

func TestExtractPTS(t *testing.T) {
	// PTS encoded per the 5-byte marker-bit layout; round-trip via the
	// fixture encoder.
	const want uint64 = 123456789
	p := &pes.Packet{HasPTS: true, PTS: want, Segments: []byte{}}
	d := newTestDecoder(t)
	var gotPTS uint64
	d.OnDisplaySet(func(ds *DisplaySet, _ interface{}) { gotPTS = ds.PTS }, nil)

	endSeg := []byte{0x0F, 0x80, 0x00, 0x01, 0x00, 0x00}
	p.Segments = endSeg
	if _, err := d.Feed(p.Bytes()); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if gotPTS != want {
		t.Errorf("PTS = %d, want %d", gotPTS, want)
	}
}
