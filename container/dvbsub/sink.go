/*
NAME
  sink.go

DESCRIPTION
  sink.go implements CallbackSink, the one-way emission boundary for
  completed display sets, per spec.md section 4.8.

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

// DisplaySetHandler is invoked synchronously for each completed
// DisplaySet. The passed DisplaySet is only valid for the duration of the
// call; implementations that need to retain it must clone it.
type DisplaySetHandler func(ds *DisplaySet, userData interface{})

// CallbackSink holds a single registered DisplaySetHandler. It performs no
// buffering or coalescing: every end-of-display-set segment results in at
// most one synchronous call.
type CallbackSink struct {
	handler  DisplaySetHandler
	userData interface{}
}

// SetHandler registers fn as the sink's handler, replacing any previously
// registered one.
func (c *CallbackSink) SetHandler(fn DisplaySetHandler, userData interface{}) {
	c.handler = fn
	c.userData = userData
}

// emit invokes the registered handler, if any, with ds. No error escapes
// the callback boundary (spec.md section 7).
func (c *CallbackSink) emit(ds *DisplaySet) {
	if c.handler == nil {
		return
	}
	c.handler(ds, c.userData)
}
