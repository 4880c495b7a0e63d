// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package zaplog logs classified HTTP exchanges with a zap logger.
//
// Install the handler into the handler group of a reqw.Client:
//
//	logger, _ := zap.NewProduction()
//	handlers := &reqw.HandlerGroup{}
//	zaplog.Install(handlers, logger)
//	client := &reqw.Client{Handlers: handlers}
//
// Each exchange produces one log entry when its result is classified.
// Successes are logged at debug level, HTTP errors at warn level, and
// transport errors at error level.
package zaplog
