// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqw

// A HandlerGroup is a group of event handler chains which can be
// installed in a Client.
//
// A HandlerGroup must be fully assembled before it is installed, since
// PushBack is not safe to call while a Client is using the group.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("reqw: nil handler")
	}
	if evt < 0 || evt >= eventSentinel {
		panic("reqw: invalid event")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, x *Exchange) {
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, x)
	}
}

func run(chain []Handler, evt Event, x *Exchange) {
	for _, h := range chain {
		h.Handle(evt, x)
	}
}

// A Handler handles the occurrence of an event during an exchange.
type Handler interface {
	Handle(Event, *Exchange)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with appropriate
// signature, then HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *Exchange)

// Handle calls f(evt, x).
func (f HandlerFunc) Handle(evt Event, x *Exchange) {
	f(evt, x)
}
