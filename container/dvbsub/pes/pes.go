/*
NAME
  pes.go

DESCRIPTION
  pes.go provides PES packet encoding for DVB subtitle test fixtures,
  adapted from container/mts/pes in the wider av module down to the
  fields a private_stream_1 (DVB subtitle) PES packet actually uses.

AUTHOR
  Saxon A. Nelson-Milton <saxon.milton@gmail.com>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pes builds PES packets carrying DVB subtitle data
// (stream_id 0xBD, private_stream_1), for use by the dvbsub package's
// tests. It is not used by the decoder itself, which only ever parses
// PES bytes, never emits them.
package pes

import "github.com/Comcast/gots/v2"

// PrivateStream1SID is the PES stream_id used for DVB subtitles.
const PrivateStream1SID = 0xBD

// DataIdentifier and SubtitleStreamID are the two bytes that must follow
// the PES header on a DVB subtitle elementary stream.
const (
	DataIdentifier   = 0x20
	SubtitleStreamID = 0x00
)

const MaxPesSize = 64 * 1 << 10

// Packet encapsulates the fields of a PES packet carrying DVB subtitle
// data. Unlike a general PES encoder this always targets
// private_stream_1 and always prefixes Segments with the DVB
// data-identifier/subtitle-stream-id bytes via Bytes.
type Packet struct {
	HasPTS       bool
	PTS          uint64
	HeaderLength byte   // Extra PES header bytes beyond the PTS, written as 0xFF stuffing.
	Segments     []byte // Encoded subtitle segments (sync byte onward).
}

// Bytes encodes p into a complete PES packet.
func (p *Packet) Bytes() []byte {
	data := append([]byte{DataIdentifier, SubtitleStreamID}, p.Segments...)

	headerLen := p.HeaderLength
	pdi := byte(0)
	if p.HasPTS {
		pdi = 2
		headerLen += 5
	}

	// octet 6: marker bits '10', scrambling control, priority, DAI,
	// copyright, original, all left at zero for test fixtures.
	flags6 := byte(0x2 << 6)
	flags7 := pdi << 6

	header := []byte{
		0x00, 0x00, 0x01,
		PrivateStream1SID,
		0, 0, // PES_packet_length, filled in below.
		flags6,
		flags7,
		headerLen,
	}

	body := make([]byte, 0, int(headerLen)+len(data))
	if p.HasPTS {
		ptsBuf := make([]byte, 5)
		gots.InsertPTS(ptsBuf, p.PTS)
		body = append(body, ptsBuf...)
	}
	for i := 0; i < int(p.HeaderLength); i++ {
		body = append(body, 0xFF)
	}
	body = append(body, data...)

	length := len(header) - 6 + len(body)
	header[4] = byte(length >> 8)
	header[5] = byte(length & 0xFF)

	return append(header, body...)
}
