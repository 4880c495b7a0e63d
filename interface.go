// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqw

import (
	"io"
	"net/http"
	"net/url"
	"strings"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
//
// The HTTPDoer is the external collaborator that performs the actual
// HTTP exchange, including any redirects, retries, timeouts, and
// connection pooling it supports.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package. In
	// particular, it must never return a nil response with a nil error.
	Do(r *http.Request) (*http.Response, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
type IdleCloser interface {
	CloseIdleConnections()
}

// Do uses the specified HTTPDoer to send req, and returns the classified
// result. If d is nil, http.DefaultClient is used.
//
// Do is shorthand for Classify(d.Do(req)).
func Do(d HTTPDoer, req *http.Request) (*http.Response, error) {
	return Classify(doer(d).Do(req))
}

// Get uses the specified HTTPDoer to issue a GET to the specified URL,
// and returns the classified result.
//
// If the request cannot be constructed (for example, because the URL
// is invalid), the construction error is returned unclassified, since
// no exchange took place.
func Get(d HTTPDoer, url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return Do(d, req)
}

// Head uses the specified HTTPDoer to issue a HEAD to the specified
// URL, and returns the classified result.
//
// If the request cannot be constructed, the construction error is
// returned unclassified.
func Head(d HTTPDoer, url string) (*http.Response, error) {
	req, err := http.NewRequest("HEAD", url, nil)
	if err != nil {
		return nil, err
	}
	return Do(d, req)
}

// Post uses the specified HTTPDoer to issue a POST to the specified
// URL, and returns the classified result.
//
// If the request cannot be constructed, the construction error is
// returned unclassified.
func Post(d HTTPDoer, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := newPost(url, contentType, body)
	if err != nil {
		return nil, err
	}
	return Do(d, req)
}

// PostForm uses the specified HTTPDoer to issue a POST to the specified
// URL, with data's keys and values URL-encoded as the request body, and
// returns the classified result.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
func PostForm(d HTTPDoer, url string, data url.Values) (*http.Response, error) {
	return Post(d, url, formContentType, strings.NewReader(data.Encode()))
}

const formContentType = "application/x-www-form-urlencoded"

func newPost(url, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest("POST", url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return req, nil
}

func doer(d HTTPDoer) HTTPDoer {
	if d == nil {
		return http.DefaultClient
	}

	return d
}
