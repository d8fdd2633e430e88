// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messages

import (
	"fmt"
	"strings"
)

// Severity - importance of a diagnostic event, lowest first
type Severity int

// severity scale - a subset of the RFC 5424 levels
const (
	Debug Severity = iota
	Info
	Notice
	Warning
	Error
	Critical
)

// String - display name of a severity
func (severity Severity) String() string {
	switch severity {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Notice:
		return "notice"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Critical:
		return "critical"
	default:
		return fmt.Sprintf("severity:%d", int(severity))
	}
}

// Code - identifies one reportable condition
type Code int

// catalogued conditions
const (
	_ Code = iota
	TreeCreated
	TreeWiped
	NilPayload
	EmptyTree
	PayloadExists
	PayloadNotFound
	CapacityReached
	HeightMismatch
	OutOfTolerance
)

// a single catalog entry
type entry struct {
	severity Severity
	template string
}

// default catalog - templates substitute {name} from the params map
var defaultEntries = map[Code]entry{
	TreeCreated:     {Debug, "tree created with balance factor {factor}"},
	TreeWiped:       {Debug, "tree wiped, {nodes} nodes removed"},
	NilPayload:      {Warning, "nil payload passed to {operation}"},
	EmptyTree:       {Notice, "{operation} requested on an empty tree"},
	PayloadExists:   {Debug, "payload {payload} is already stored"},
	PayloadNotFound: {Debug, "payload {payload} was not found"},
	CapacityReached: {Warning, "capacity limit of {limit} nodes reached"},
	HeightMismatch:  {Error, "cached height {cached} differs from computed height {computed} at {payload}"},
	OutOfTolerance:  {Error, "balance {balance} exceeds tolerance {factor} at {payload}"},
}

// Table - a per instance message catalog
type Table struct {
	entries map[Code]entry
}

// NewTable - create a catalog initialised with the default entries
func NewTable() *Table {
	entries := make(map[Code]entry, len(defaultEntries))
	for code, e := range defaultEntries {
		entries[code] = e
	}
	return &Table{
		entries: entries,
	}
}

// Set - override the severity and template of one code
func (table *Table) Set(code Code, severity Severity, template string) {
	table.entries[code] = entry{
		severity: severity,
		template: template,
	}
}

// Severity - the severity currently assigned to a code
func (table *Table) Severity(code Code) Severity {
	if e, ok := table.entries[code]; ok {
		return e.severity
	}
	return Error
}

// Format - expand the template of a code with supplied parameters
//
// unmatched placeholders are left in place so a partly filled message
// is still recognisable in a log
func (table *Table) Format(code Code, params map[string]interface{}) string {
	e, ok := table.entries[code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic code: %d", int(code))
	}
	text := e.template
	for name, value := range params {
		text = strings.Replace(text, "{"+name+"}", fmt.Sprintf("%v", value), -1)
	}
	return text
}

// Qualified - the formatted text prefixed with module and code
func (table *Table) Qualified(code Code, text string) string {
	return fmt.Sprintf("rbppavl [%d]: %s", int(code), text)
}
