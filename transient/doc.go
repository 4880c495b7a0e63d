// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient sorts transport-level HTTP errors into broad
// categories: timeouts, refused and reset connections, DNS failures,
// TLS failures, and HTTP/2 protocol failures.
//
// The categories are handy for bucketing error metrics and log lines,
// and for callers building their own retry logic on top of
// reqw.Classify. Package transient does not retry anything itself.
package transient
