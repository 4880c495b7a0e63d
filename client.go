// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqw

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var emptyHandlers = HandlerGroup{}

// A Client sends HTTP requests through an HTTPDoer and classifies the
// results. Its zero value is a valid configuration.
//
// The zero value client uses http.DefaultClient (from net/http) as the
// HTTPDoer and an empty handler group (no event handlers).
//
// Client adds exactly two things on top of the HTTPDoer: every result
// is passed through Classify, and user-provided handlers are invoked at
// the events BeforeSend, AfterReceive, and AfterClassify. Everything
// else, including redirects, retries, timeouts, and connection reuse,
// is left to the HTTPDoer. Client makes exactly one call to the
// HTTPDoer per request.
//
// Client is safe for concurrent use by multiple goroutines, provided
// its HTTPDoer and handlers are.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, http.DefaultClient from the standard net/http
	// package is used.
	HTTPDoer HTTPDoer
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during an exchange.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Do sends an HTTP request and returns the classified result, exactly
// as Classify would produce it from the HTTPDoer's return values.
//
// The caller is responsible for closing the response body on success,
// and for closing the body of the HTTPError's Response on an HTTP
// error.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	x := &Exchange{
		Request: req,
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	x.Start = time.Now()
	handlers.run(BeforeSend, x)
	x.Response, x.Err = doer(c.HTTPDoer).Do(x.Request)
	handlers.run(AfterReceive, x)
	r := Inspect(x.Response, x.Err)
	x.Kind, x.Response, x.Err = r.Kind, r.Response, r.Err
	x.End = time.Now()
	handlers.run(AfterClassify, x)

	if r.Kind != Success {
		return nil, r.Err
	}

	return r.Response, nil
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do.
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Head issues a HEAD to the specified URL, using the same policies
// followed by Do.
func (c *Client) Head(url string) (*http.Response, error) {
	req, err := http.NewRequest("HEAD", url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Post issues a POST to the specified URL, using the same policies
// followed by Do.
func (c *Client) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := newPost(url, contentType, body)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values URL-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
func (c *Client) PostForm(url string, data url.Values) (*http.Response, error) {
	return c.Post(url, formContentType, strings.NewReader(data.Encode()))
}

// CloseIdleConnections invokes the same method on the client's
// underlying HTTPDoer.
//
// If the HTTPDoer has no CloseIdleConnections method, this method does
// nothing.
func (c *Client) CloseIdleConnections() {
	if ic, ok := doer(c.HTTPDoer).(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
