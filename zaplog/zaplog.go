// Copyright 2021 The reqw Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package zaplog

import (
	"errors"

	"github.com/gogama/reqw"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Message is the message of every log entry written by the handler.
const Message = "http exchange"

// Handler returns an event handler that logs the outcome of an exchange
// to logger when it sees the reqw.AfterClassify event. Other events are
// ignored.
func Handler(logger *zap.Logger) reqw.Handler {
	if logger == nil {
		panic("reqw/zaplog: nil logger")
	}

	return handler{logger}
}

// Install adds the handler returned by Handler to the back of g's
// AfterClassify chain.
func Install(g *reqw.HandlerGroup, logger *zap.Logger) {
	g.PushBack(reqw.AfterClassify, Handler(logger))
}

type handler struct {
	logger *zap.Logger
}

func (h handler) Handle(evt reqw.Event, x *reqw.Exchange) {
	if evt != reqw.AfterClassify {
		return
	}

	level := zapcore.DebugLevel
	fields := make([]zap.Field, 0, 7)
	fields = append(fields,
		zap.String("method", x.Request.Method),
		zap.String("url", x.Request.URL.String()),
		zap.Stringer("kind", x.Kind),
		zap.Duration("duration", x.Duration()),
	)

	switch x.Kind {
	case reqw.Success:
		fields = append(fields, zap.Int("status", x.StatusCode()))
	case reqw.HTTP:
		level = zapcore.WarnLevel
		fields = append(fields, zap.Int("status", x.StatusCode()))
	case reqw.Transport:
		level = zapcore.ErrorLevel
		var te *reqw.TransportError
		if errors.As(x.Err, &te) {
			fields = append(fields, zap.Stringer("category", te.Category()))
		}
		fields = append(fields, zap.Error(x.Err))
	}

	if ce := h.logger.Check(level, Message); ce != nil {
		ce.Write(fields...)
	}
}
