// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqw

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		for _, code := range []int{200, 201, 202, 204, 206, 250, 299} {
			t.Run(fmt.Sprintf("code=%d", code), func(t *testing.T) {
				resp := &http.Response{StatusCode: code}
				r, err := Classify(resp, nil)
				assert.Same(t, resp, r)
				assert.NoError(t, err)
				assert.Equal(t, code, resp.StatusCode)
			})
		}
	})
	t.Run("HTTP", func(t *testing.T) {
		for _, code := range []int{0, 100, 101, 199, 300, 301, 304, 400, 404, 429, 500, 503, 599, 999} {
			t.Run(fmt.Sprintf("code=%d", code), func(t *testing.T) {
				resp := &http.Response{StatusCode: code}
				r, err := Classify(resp, nil)
				assert.Nil(t, r)
				var he *HTTPError
				require.True(t, errors.As(err, &he))
				assert.Same(t, resp, he.Response)
				assert.Equal(t, code, he.StatusCode())
			})
		}
	})
	t.Run("Transport", func(t *testing.T) {
		errs := []error{
			errors.New("foo"),
			syscall.ECONNREFUSED,
			&url.Error{Op: "Get", URL: "http://localhost:1", Err: syscall.ECONNREFUSED},
		}
		for i, e := range errs {
			t.Run(fmt.Sprintf("errs[%d]=%v", i, e), func(t *testing.T) {
				r, err := Classify(nil, e)
				assert.Nil(t, r)
				var te *TransportError
				require.True(t, errors.As(err, &te))
				assert.Equal(t, e, te.Err)
				assert.True(t, errors.Is(err, e))
			})
		}
	})
	t.Run("Transport with response", func(t *testing.T) {
		e := errors.New("stopped after 10 redirects")
		r, err := Classify(&http.Response{StatusCode: 302}, e)
		assert.Nil(t, r)
		assert.Equal(t, &TransportError{Err: e}, err)
	})
	t.Run("nil response and nil error", func(t *testing.T) {
		assert.PanicsWithValue(t, "reqw: nil response and nil error", func() {
			_, _ = Classify(nil, nil)
		})
	})
	t.Run("Deterministic", func(t *testing.T) {
		resp := &http.Response{StatusCode: 404}
		_, err1 := Classify(resp, nil)
		_, err2 := Classify(resp, nil)
		assert.Equal(t, err1, err2)
		assert.NotSame(t, err1, err2)
	})
}

func TestClassify_Scenarios(t *testing.T) {
	connRefused := &url.Error{Op: "Get", URL: "http://127.0.0.1:1", Err: syscall.ECONNREFUSED}
	testCases := []struct {
		name string
		resp *http.Response
		err  error
		kind Kind
	}{
		{"200", &http.Response{StatusCode: 200}, nil, Success},
		{"404", &http.Response{StatusCode: 404}, nil, HTTP},
		{"500", &http.Response{StatusCode: 500}, nil, HTTP},
		{"299", &http.Response{StatusCode: 299}, nil, Success},
		{"300", &http.Response{StatusCode: 300}, nil, HTTP},
		{"connection refused", nil, connRefused, Transport},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			r, err := Classify(testCase.resp, testCase.err)
			assert.Equal(t, testCase.kind, KindOf(err))
			switch testCase.kind {
			case Success:
				assert.Same(t, testCase.resp, r)
			case HTTP:
				assert.Nil(t, r)
				assert.Same(t, testCase.resp, err.(*HTTPError).Response)
			case Transport:
				assert.Nil(t, r)
				assert.Same(t, connRefused, err.(*TransportError).Err)
				assert.Equal(t, "ConnRefused", err.(*TransportError).Category().String())
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Success, KindOf(nil))
	assert.Equal(t, HTTP, KindOf(&HTTPError{Response: &http.Response{StatusCode: 400}}))
	assert.Equal(t, HTTP, KindOf(fmt.Errorf("fetching: %w", &HTTPError{Response: &http.Response{}})))
	assert.Equal(t, Transport, KindOf(&TransportError{Err: errors.New("foo")}))
	assert.Equal(t, Transport, KindOf(errors.New("bar")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Success", Success.String())
	assert.Equal(t, "HTTP", HTTP.String())
	assert.Equal(t, "Transport", Transport.String())
	assert.Equal(t, "Kind(?)", Kind(-1).String())
	assert.Equal(t, "Kind(?)", kindSentinel.String())
	assert.Len(t, kindNames, int(kindSentinel))
}

func TestInspect(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		resp := &http.Response{StatusCode: 200}
		r := Inspect(resp, nil)
		assert.Equal(t, Success, r.Kind)
		assert.Same(t, resp, r.Response)
		assert.NoError(t, r.Err)
	})
	t.Run("HTTP", func(t *testing.T) {
		resp := &http.Response{StatusCode: 418}
		r := Inspect(resp, nil)
		assert.Equal(t, HTTP, r.Kind)
		assert.Same(t, resp, r.Response)
		require.IsType(t, &HTTPError{}, r.Err)
		assert.Same(t, resp, r.Err.(*HTTPError).Response)
	})
	t.Run("Transport", func(t *testing.T) {
		e := errors.New("baz")
		r := Inspect(&http.Response{StatusCode: 200}, e)
		assert.Equal(t, Transport, r.Kind)
		assert.Nil(t, r.Response)
		assert.Equal(t, &TransportError{Err: e}, r.Err)
	})
	t.Run("nil response and nil error", func(t *testing.T) {
		assert.Panics(t, func() { Inspect(nil, nil) })
	})
}
