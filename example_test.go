// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqw_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gogama/reqw"
)

func ExampleClassify() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/found" {
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	for _, path := range []string{"/found", "/missing"} {
		resp, err := reqw.Classify(http.Get(server.URL + path))
		var he *reqw.HTTPError
		switch {
		case err == nil:
			fmt.Println(path, "ok", resp.StatusCode)
			_ = resp.Body.Close()
		case errors.As(err, &he):
			fmt.Println(path, "http error", he.StatusCode())
			_ = he.Response.Body.Close()
		default:
			fmt.Println(path, "transport error", err)
		}
	}
	// Output:
	// /found ok 200
	// /missing http error 404
}

func ExampleInspect() {
	r := reqw.Inspect(&http.Response{StatusCode: 503, Status: "503 Service Unavailable"}, nil)
	fmt.Println(r.Kind, r.Response.StatusCode)
	fmt.Println(r.Err)
	// Output:
	// HTTP 503
	// reqw: http status 503 Service Unavailable
}

func ExampleKindOf() {
	_, err := reqw.Classify(nil, errors.New("dial tcp: connection refused"))
	fmt.Println(reqw.KindOf(err))
	fmt.Println(err)
	// Output:
	// Transport
	// reqw: transport: dial tcp: connection refused
}
