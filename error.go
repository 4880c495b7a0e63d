// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqw

import (
	"net/http"
	"strconv"

	"github.com/gogama/reqw/transient"
)

// An HTTPError indicates an HTTP response was received, but its status
// code is not in the range 200-299.
//
// The Response field holds the response exactly as the HTTP client
// returned it. Its body has not been read or closed.
type HTTPError struct {
	Response *http.Response
}

func (err *HTTPError) Error() string {
	status := err.Response.Status
	if status == "" {
		status = strconv.Itoa(err.Response.StatusCode)
	}

	return "reqw: http status " + status
}

// StatusCode returns the status code of the wrapped response.
func (err *HTTPError) StatusCode() int {
	return err.Response.StatusCode
}

// A TransportError indicates the HTTP exchange did not complete, so no
// response is available.
//
// The Err field holds the error exactly as the HTTP client returned it.
// For the standard library client, this is typically a *url.Error.
type TransportError struct {
	Err error
}

func (err *TransportError) Error() string {
	return "reqw: transport: " + err.Err.Error()
}

// Unwrap returns the wrapped client error.
func (err *TransportError) Unwrap() error {
	return err.Err
}

// Timeout reports whether the transport error was caused by a timeout.
func (err *TransportError) Timeout() bool {
	return err.Category() == transient.Timeout
}

// Category returns the transience category of the wrapped client
// error, as reported by transient.Categorize.
func (err *TransportError) Category() transient.Category {
	return transient.Categorize(err.Err)
}
