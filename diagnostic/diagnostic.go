// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package diagnostic - logger backed diagnostics sink
//
// Implements the DiagnosticMessage/ErrorHandler half of the tree
// callback contract on top of the logging channels, so a payload
// callback type only needs to embed a Sink and add its Compare and
// Dump methods.
package diagnostic

import (
	"github.com/bitmark-inc/logger"

	"github.com/mondrake/Rbppavl/fault"
	"github.com/mondrake/Rbppavl/messages"
)

// Sink - routes tree diagnostics onto one logger channel
//
// the logging system must have been initialised before creating a
// sink, see logger.Initialise
type Sink struct {
	log *logger.L
}

// New - create a sink writing to a named logger channel
func New(tag string) *Sink {
	return &Sink{
		log: logger.New(tag),
	}
}

// DiagnosticMessage - receive an observability event from a tree
func (sink *Sink) DiagnosticMessage(severity messages.Severity, code messages.Code, text string, params map[string]interface{}, qualifiedText string, source string) {
	switch severity {
	case messages.Debug:
		sink.log.Debugf("%s: %s", source, qualifiedText)
	case messages.Info, messages.Notice:
		sink.log.Infof("%s: %s", source, qualifiedText)
	case messages.Warning:
		sink.log.Warnf("%s: %s", source, qualifiedText)
	case messages.Error:
		sink.log.Errorf("%s: %s", source, qualifiedText)
	default:
		sink.log.Criticalf("%s: %s", source, qualifiedText)
	}
}

// ErrorHandler - an event reached the fatal threshold of its tree
//
// logs at critical, flushes and hands a process error back for
// propagation; embedders needing to panic can wrap this
func (sink *Sink) ErrorHandler(code messages.Code, text string, params map[string]interface{}, qualifiedText string, source string) error {
	sink.log.Criticalf("%s: %s", source, qualifiedText)
	sink.log.Flush()
	return fault.ProcessError(text)
}
