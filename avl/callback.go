// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/mondrake/Rbppavl/messages"
)

// Callback - the collaborator contract a payload type must be paired
// with to be stored in a tree
//
// Compare defines ordering and uniqueness of payloads; Dump produces
// a display form used only for diagnostics and debugging.
// DiagnosticMessage receives every observability event the tree
// emits; ErrorHandler is additionally invoked when an event reaches
// the fatal severity threshold of the tree and its non-nil return is
// propagated to the caller of the failing operation.
type Callback interface {

	// return negative/zero/positive for a < b, a == b, a > b
	Compare(a interface{}, b interface{}) int

	// printable representation of a payload
	Dump(a interface{}) string

	// receive an observability event, no return
	DiagnosticMessage(severity messages.Severity, code messages.Code, text string, params map[string]interface{}, qualifiedText string, source string)

	// an event reached the fatal threshold
	ErrorHandler(code messages.Code, text string, params map[string]interface{}, qualifiedText string, source string) error
}
