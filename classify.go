// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqw

import (
	"errors"
	"net/http"
)

// A Kind identifies which of the three possible outcomes an HTTP
// request had.
type Kind int

const (
	// Success indicates an HTTP response was received and its status
	// code is in the range 200-299 inclusive.
	Success Kind = iota
	// HTTP indicates an HTTP response was received but its status code
	// is outside the range 200-299. The error is an *HTTPError.
	HTTP
	// Transport indicates no HTTP response is available because the
	// exchange failed below the HTTP level: DNS, connect, TLS, protocol
	// violation, client-side timeout, and so on. The error is a
	// *TransportError.
	Transport
	kindSentinel
)

var kindNames = []string{
	"Success",
	"HTTP",
	"Transport",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= kindSentinel {
		return "Kind(?)"
	}

	return kindNames[k]
}

// Classify re-tags the result of an HTTP request, as returned by
// http.Client.Do or any other HTTPDoer, into one of three outcomes.
//
// • If err is non-nil, the return value is a nil response and a
// *TransportError wrapping err. This check comes first, so a response
// returned alongside an error (http.Client does this when a redirect
// check fails, after closing the body) is discarded.
//
// • If resp has a status code in the range 200-299 inclusive, the
// return value is resp itself and a nil error.
//
// • Otherwise the return value is a nil response and an *HTTPError
// wrapping resp.
//
// Classify never reads or closes the response body, and never modifies
// resp or err, so the wrapped values are exactly the ones passed in.
// If an *HTTPError is returned, the caller remains responsible for
// closing the body of its Response.
//
// Classify panics if both resp and err are nil, since no HTTP client
// may legally return that combination.
func Classify(resp *http.Response, err error) (*http.Response, error) {
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp == nil {
		panic("reqw: nil response and nil error")
	}

	if !successful(resp.StatusCode) {
		return nil, &HTTPError{Response: resp}
	}

	return resp, nil
}

func successful(statusCode int) bool {
	return statusCode >= 200 && statusCode <= 299
}

// KindOf reports the outcome kind of an error returned by Classify
// (or by any function in this package that classifies its result).
//
// A nil error means Success. An error which is, or wraps, an *HTTPError
// means HTTP. Any other error means Transport.
func KindOf(err error) Kind {
	if err == nil {
		return Success
	}

	var he *HTTPError
	if errors.As(err, &he) {
		return HTTP
	}

	return Transport
}

// A Result is the classified result of an HTTP request in the form of
// an explicit tagged value, for callers who would rather switch on
// Kind than type-assert the error.
//
// Response is non-nil for the Success and HTTP kinds and nil for the
// Transport kind. Err is nil for the Success kind, an *HTTPError for
// the HTTP kind, and a *TransportError for the Transport kind.
type Result struct {
	Kind     Kind
	Response *http.Response
	Err      error
}

// Inspect classifies the result of an HTTP request in the same way as
// Classify, but returns the outcome as a Result.
//
// Unlike Classify, Inspect keeps the response in the Result for the
// HTTP kind, so it can be reached without unwrapping the error.
func Inspect(resp *http.Response, err error) Result {
	resp, err = Classify(resp, err)
	switch x := err.(type) {
	case nil:
		return Result{Kind: Success, Response: resp}
	case *HTTPError:
		return Result{Kind: HTTP, Response: x.Response, Err: x}
	default:
		return Result{Kind: Transport, Err: x}
	}
}
