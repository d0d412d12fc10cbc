/*
NAME
  decoder.go

DESCRIPTION
  decoder.go provides Decoder, the top-level DVB subtitle decoder: it
  ties together the stream demultiplexer, decoder state, and callback
  sink described in spec.md section 2.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dvbsub decodes DVB subtitles (ETSI EN 300 743) carried in PES
// packets into positioned, palette-indexed raster images ready for
// compositing. Consumers feed PES bytes (or segment bytes with an
// out-of-band PTS) to a Decoder and register a callback to receive each
// completed DisplaySet.
package dvbsub

import (
	"fmt"

	"github.com/ausocean/utils/logging"
)

// Decoder is a single DVB subtitle decoder instance: a sequential state
// machine with no implicit shared state between instances (spec.md
// section 5). Using one Decoder from multiple goroutines requires
// external serialization.
type Decoder struct {
	log   logging.Logger
	state *DecoderState
	sink  *CallbackSink

	// categories restricts segment-dispatch debug logging; see
	// WithLogCategories.
	categories map[string]bool
}

// NewDecoder returns a Decoder that logs through log and applies options
// in order.
func NewDecoder(log logging.Logger, options ...func(*Decoder) error) (*Decoder, error) {
	d := &Decoder{
		log:   log,
		state: newDecoderState(log),
		sink:  &CallbackSink{},
	}

	for _, option := range options {
		if err := option(d); err != nil {
			return nil, fmt.Errorf("option failed with error: %w", err)
		}
	}

	return d, nil
}

// OnDisplaySet registers fn to be called synchronously, on the feeding
// goroutine, for each completed DisplaySet (spec.md section 4.8).
func (d *Decoder) OnDisplaySet(fn DisplaySetHandler, userData interface{}) {
	d.sink.SetHandler(fn, userData)
}

// PageTimeOut returns the most recently decoded page_time_out, in
// seconds. This is an output field, not an enforced deadline (spec.md
// section 5).
func (d *Decoder) PageTimeOut() uint8 {
	return d.state.pageTimeOut
}

// DisplayDefinition returns the decoder's current page-wide window
// definition.
func (d *Decoder) DisplayDefinition() DisplayDefinition {
	return d.state.displayDef
}
