/*
NAME
  demux.go

DESCRIPTION
  demux.go implements the StreamDemux component: PES framing, subtitle
  stream gating, PTS extraction, and segment iteration, per spec.md
  section 4.6.

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

import "github.com/pkg/errors"

// privateStream1SID is the PES stream_id for private_stream_1, which
// carries DVB subtitles (ETSI EN 300 743 section 4.1).
const privateStream1SID = 0xBD

// dataIdentifier and subtitleStreamID are the two fixed bytes that must
// follow the PES header for a DVB subtitle elementary stream (spec.md
// section 4.6, step 4).
const (
	dataIdentifier  = 0x20
	subtitleStreamID = 0x00
)

const ptsFlagMask = 0x80

// Feed consumes bytes framed as a PES packet carrying DVB subtitle data.
// It returns the number of bytes consumed from b and an error.
//
// ErrNeedMoreData means b does not yet contain a complete PES packet;
// the caller should retry with the same prefix plus more bytes appended,
// and no state was mutated. Any other non-nil error means the leading
// bytes of b could not be interpreted as a usable DVB subtitle PES
// packet; the caller should typically discard the consumed prefix
// (which may be 0) and continue with the remainder.
func (d *Decoder) Feed(b []byte) (int, error) {
	if len(b) < 6 {
		return 0, ErrNeedMoreData
	}
	if b[0] != 0x00 || b[1] != 0x00 || b[2] != 0x01 {
		return 0, ErrNotPes
	}

	streamID := b[3]
	length := int(b[4])<<8 | int(b[5])
	total := length + 6

	if streamID != privateStream1SID {
		if len(b) < total {
			return 0, ErrNeedMoreData
		}
		d.log.Debug("skipping non-subtitle PES packet", "stream_id", streamID)
		return total, errors.Wrap(ErrWrongStreamID, "demux")
	}

	if len(b) < total {
		return 0, ErrNeedMoreData
	}
	pkt := b[:total]

	if len(pkt) < 9 {
		return total, errors.Wrap(ErrTruncatedSegment, "PES header")
	}
	flags := pkt[7]
	headerLen := int(pkt[8])

	var pts uint64
	if flags&ptsFlagMask != 0 {
		if len(pkt) < 14 {
			return total, errors.Wrap(ErrTruncatedSegment, "PES PTS")
		}
		pts = extractPTS(pkt[9:14])
	}

	dataStart := 9 + headerLen
	if dataStart > len(pkt) {
		return total, errors.Wrap(ErrTruncatedSegment, "PES header length")
	}

	err := d.feedSubtitleData(pkt[dataStart:], pts)
	return total, err
}

// FeedWithPTS decodes DVB subtitle segment data directly, bypassing PES
// framing (spec.md section 4.6, "feed_with_pts"), starting from the
// data-identifier byte as step 4 of Feed would.
func (d *Decoder) FeedWithPTS(pts uint64, b []byte) error {
	return d.feedSubtitleData(b, pts)
}

// feedSubtitleData validates the data-identifier/subtitle-stream-id
// preamble and then runs the segment loop.
func (d *Decoder) feedSubtitleData(data []byte, pts uint64) error {
	if len(data) < 2 || data[0] != dataIdentifier || data[1] != subtitleStreamID {
		return ErrNotDvbSubtitle
	}
	d.feedSegments(data[2:], pts)
	return nil
}

// feedSegments iterates segments per spec.md section 4.6 step 5: after
// each segment, it peeks the next byte; anything other than the sync byte
// 0x0F is treated as the end-of-PES marker and stops the loop.
func (d *Decoder) feedSegments(data []byte, pts uint64) {
	for len(data) > 0 && data[0] == segmentSyncByte {
		consumed, err := d.dispatchSegment(data, pts)
		if err != nil {
			d.log.Warning("segment error", "error", err.Error())
		}
		if consumed <= 0 {
			break
		}
		data = data[consumed:]
	}
}

// extractPTS decodes a standard 5-byte PES PTS/DTS field using the
// "0010 xxx 1 | 15 bits | 1 | 15 bits | 1" marker-bit encoding.
func extractPTS(d []byte) uint64 {
	return uint64((d[0]>>1)&0x07)<<30 | uint64(d[1])<<22 | uint64((d[2]>>1)&0x7f)<<15 | uint64(d[3])<<7 | uint64((d[4]>>1)&0x7f)
}
