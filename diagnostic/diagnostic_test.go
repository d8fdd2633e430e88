// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diagnostic_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/mondrake/Rbppavl/diagnostic"
	"github.com/mondrake/Rbppavl/fault"
	"github.com/mondrake/Rbppavl/messages"
)

const logDirectory = "log"

func TestMain(m *testing.M) {
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "diagnostic_test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}

	// start logging
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

// test that every severity is accepted without fuss
func TestDiagnosticMessage(t *testing.T) {
	sink := diagnostic.New("diagnostic-test")

	severities := []messages.Severity{
		messages.Debug,
		messages.Info,
		messages.Notice,
		messages.Warning,
		messages.Error,
		messages.Critical,
	}
	for _, severity := range severities {
		sink.DiagnosticMessage(severity, messages.EmptyTree, "text", nil, "rbppavl [4]: text", "avl.Tree")
	}
}

// test that escalation hands back a process class error
func TestErrorHandler(t *testing.T) {
	sink := diagnostic.New("diagnostic-test")

	err := sink.ErrorHandler(messages.OutOfTolerance, "balance 3 exceeds tolerance 2 at x", nil, "rbppavl [9]: ...", "avl.Tree")
	if nil == err {
		t.Fatal("error handler returned no error")
	}
	if !fault.IsErrProcess(err) {
		t.Errorf("unexpected error class: %v", err)
	}
	if "balance 3 exceeds tolerance 2 at x" != err.Error() {
		t.Errorf("unexpected error text: %q", err.Error())
	}
}
