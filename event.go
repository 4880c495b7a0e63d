// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqw

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to extend it with custom
// functionality, such as logging or metrics.
type Event int

const (
	// BeforeSend identifies the event that occurs before the HTTP
	// request is handed to the HTTPDoer.
	//
	// When Client fires BeforeSend, the exchange's request and start
	// time are set. BeforeSend handlers may modify the request, for
	// example to add a signature header, but should clone reference
	// type fields (URL and Header) before changing them.
	BeforeSend Event = iota
	// AfterReceive identifies the event that occurs after the HTTPDoer
	// returns, but before its result is classified.
	//
	// When Client fires AfterReceive, the exchange's response and error
	// fields hold exactly what the HTTPDoer returned.
	AfterReceive
	// AfterClassify identifies the event that occurs after the result
	// has been classified, immediately before Client returns it.
	//
	// When Client fires AfterClassify, the exchange's kind and end time
	// are set, its error field holds the classified error (nil, an
	// *HTTPError, or a *TransportError), and its response field is
	// non-nil unless the kind is Transport.
	AfterClassify
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeSend",
	"AfterReceive",
	"AfterClassify",
}

// Events returns a slice containing all events which can occur in an
// exchange run by Client, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeSend,
		AfterReceive,
		AfterClassify,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
