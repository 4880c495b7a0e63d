// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqw

import (
	"context"
	"net/http"
	"time"
)

// An Exchange represents the state of a single HTTP request/response
// exchange run by Client. It is passed to every event handler.
//
// Handlers may store their own data on an Exchange using SetValue and
// read it back using Value. Apart from the request during BeforeSend,
// they should treat the exported fields as read-only.
type Exchange struct {
	// Request is the HTTP request being sent. It is never nil.
	Request *http.Request

	// Start is the time just before the request was handed to the
	// HTTPDoer.
	Start time.Time

	// End is the time the result was classified. It contains the zero
	// value until the AfterClassify event.
	End time.Time

	// Response is the HTTP response. Before classification it holds
	// whatever the HTTPDoer returned. After classification it is
	// non-nil for the Success and HTTP kinds, and nil for Transport.
	Response *http.Response

	// Err is the error. Before classification it holds whatever the
	// HTTPDoer returned. After classification it holds the classified
	// error: nil, an *HTTPError, or a *TransportError.
	Err error

	// Kind is the classified outcome. It is only meaningful once End
	// is set.
	Kind Kind

	data context.Context
}

// StatusCode returns the status code of the response, or 0 if there is
// no response.
func (x *Exchange) StatusCode() int {
	if x.Response == nil {
		return 0
	}

	return x.Response.StatusCode
}

// Classified indicates whether the result of the exchange has been
// classified yet.
func (x *Exchange) Classified() bool {
	return x.End != (time.Time{})
}

// Duration returns the duration of the exchange.
//
// Before classification, the duration is the time elapsed since Start.
// Afterward, it is End minus Start.
func (x *Exchange) Duration() time.Duration {
	if x.Start == (time.Time{}) {
		return 0
	} else if !x.Classified() {
		return time.Since(x.Start)
	}

	return x.End.Sub(x.Start)
}

// SetValue allows event handlers to store arbitrary data in the
// exchange.
//
// The key must follow the same rules as the key parameter in
// context.WithValue: it may not be nil, it must be comparable, and it
// should not be of a built-in type, to avoid collisions between
// handlers.
func (x *Exchange) SetValue(key, value interface{}) {
	ctx := x.data
	if ctx == nil {
		ctx = context.Background()
	}

	x.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this exchange for key,
// or nil if there is no value associated with key.
func (x *Exchange) Value(key interface{}) interface{} {
	ctx := x.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
