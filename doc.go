// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package reqw re-tags the result of an HTTP request as one of three
outcomes: success, HTTP error, or transport error.

The standard library HTTP client only reports an error when the HTTP
exchange itself fails. A 404 or a 503 comes back as a perfectly valid
response with a nil error. Classify folds the status code check into
the error return, so a single error check covers both kinds of failure:

	resp, err := reqw.Classify(http.Get("https://www.example.com"))
	if err != nil {
		var he *reqw.HTTPError
		if errors.As(err, &he) {
			log.Printf("server said %d", he.StatusCode())
			he.Response.Body.Close()
		}
		return err
	}
	defer resp.Body.Close()

A response is a success if, and only if, its status code is in the
range 200 to 299 inclusive. Any other status code produces an
*HTTPError wrapping the unmodified response, so its headers and body
remain available to the caller. A transport failure produces a
*TransportError wrapping the unmodified client error.

Classify does no I/O, holds no state, and never touches the response
body. Retries, timeouts, connection pooling and body handling remain
the job of the underlying HTTP client.

For convenience, the functions Do, Get, Head, Post, and PostForm issue
a request through any HTTPDoer (such as *http.Client) and classify the
result. Client does the same, and additionally runs event handlers
around each exchange:

	handlers := &reqw.HandlerGroup{}
	zaplog.Install(handlers, logger)
	client := &reqw.Client{
		HTTPDoer: &http.Client{Timeout: 10 * time.Second},
		Handlers: handlers,
	}
	resp, err := client.Get("https://www.example.com")

Use package transient to learn more about why a transport error
happened.
*/
package reqw
