// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"syscall"

	"golang.org/x/net/http2"
)

// A Category is the category of a transport error, as reported by
// function Categorize.
//
// The category Not means the error is nil or unrecognized. Categories
// for which Transient returns true indicate a later attempt has some
// prospect of success. The remaining categories (DNS and TLS) indicate
// a failure that usually needs a configuration change to fix.
type Category int

const (
	// Not indicates a nil error, or an error not recognized by any
	// other category.
	Not Category = iota
	// Timeout indicates a client-side timeout.
	//
	// Categorize returns Timeout if the error or any of its wrapped
	// causes has a Timeout() function that reports true.
	Timeout
	// ConnRefused indicates the remote host refused the connection,
	// corresponding to the POSIX error code ECONNREFUSED.
	//
	// Connection refusal can happen while the remote service is still
	// starting up and not yet listening on its port.
	ConnRefused
	// ConnReset indicates the remote host returned an RST packet on a
	// previously active TCP connection, corresponding to the POSIX
	// error code ECONNRESET.
	ConnReset
	// DNS indicates the remote host name could not be resolved.
	//
	// Categorize returns DNS if the error is not a Timeout and the
	// error or any of its wrapped causes is a *net.DNSError.
	DNS
	// TLS indicates the TLS handshake failed, either because the
	// server did not speak TLS or because its certificate was not
	// acceptable.
	TLS
	// Protocol indicates an HTTP/2 stream or connection was torn down
	// by a protocol-level error, as reported by golang.org/x/net/http2.
	Protocol
	categorySentinel
)

var categoryNames = []string{
	"Not",
	"Timeout",
	"ConnRefused",
	"ConnReset",
	"DNS",
	"TLS",
	"Protocol",
}

// String returns the name of the category.
func (c Category) String() string {
	if c < 0 || c >= categorySentinel {
		return "Category(?)"
	}

	return categoryNames[c]
}

// Transient reports whether errors in the category are transient, that
// is, whether a later attempt has some prospect of success.
func (c Category) Transient() bool {
	switch c {
	case Timeout, ConnRefused, ConnReset, Protocol:
		return true
	default:
		return false
	}
}

// Categorize returns the category of the given error. A nil error, and
// an error which does not fit any category, both produce the return
// value Not.
//
// Categorize looks at the wrapped cause errors contained within err,
// not just err itself. Categories are checked in the order Timeout,
// ConnRefused/ConnReset, DNS, TLS, Protocol, and the first match wins.
// Categorize never checks if an error has a Temporary() function that
// returns true, as the semantics of Temporary() aren't entirely clear.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return DNS
	}

	if isTLS(err) {
		return TLS
	}

	if isProtocol(err) {
		return Protocol
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}

func isTLS(err error) bool {
	var recordErr tls.RecordHeaderError
	var authorityErr x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError
	return errors.As(err, &recordErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidErr)
}

func isProtocol(err error) bool {
	var streamErr http2.StreamError
	var connErr http2.ConnectionError
	var goAwayErr http2.GoAwayError
	return errors.As(err, &streamErr) ||
		errors.As(err, &connErr) ||
		errors.As(err, &goAwayErr)
}
