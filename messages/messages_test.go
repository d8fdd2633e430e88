// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mondrake/Rbppavl/messages"
)

// test parameter substitution
func TestFormat(t *testing.T) {
	table := messages.NewTable()

	text := table.Format(messages.TreeCreated, map[string]interface{}{
		"factor": 3,
	})
	assert.Equal(t, "tree created with balance factor 3", text)

	text = table.Format(messages.NilPayload, map[string]interface{}{
		"operation": "insert",
	})
	assert.Equal(t, "nil payload passed to insert", text)

	// unmatched placeholders stay in place
	text = table.Format(messages.CapacityReached, nil)
	assert.Equal(t, "capacity limit of {limit} nodes reached", text)
}

// test per table overrides do not leak between tables
func TestOverride(t *testing.T) {
	t1 := messages.NewTable()
	t2 := messages.NewTable()

	t1.Set(messages.EmptyTree, messages.Error, "no data for {operation}")

	assert.Equal(t, messages.Error, t1.Severity(messages.EmptyTree))
	assert.Equal(t, messages.Notice, t2.Severity(messages.EmptyTree))

	text := t1.Format(messages.EmptyTree, map[string]interface{}{
		"operation": "find",
	})
	assert.Equal(t, "no data for find", text)
}

// test severity display names stay ordered
func TestSeverity(t *testing.T) {
	assert.True(t, messages.Debug < messages.Info)
	assert.True(t, messages.Info < messages.Notice)
	assert.True(t, messages.Notice < messages.Warning)
	assert.True(t, messages.Warning < messages.Error)
	assert.True(t, messages.Error < messages.Critical)

	assert.Equal(t, "warning", messages.Warning.String())
	assert.Equal(t, "critical", messages.Critical.String())
}

// test that the catalog covers exactly the reportable conditions
func TestCatalogComplete(t *testing.T) {
	table := messages.NewTable()

	for code := messages.TreeCreated; code <= messages.OutOfTolerance; code += 1 {
		assert.NotContains(t, table.Format(code, nil), "unknown diagnostic code")
	}
	assert.Contains(t, table.Format(messages.OutOfTolerance+1, nil), "unknown diagnostic code")
}

// test qualified text and unknown codes
func TestQualified(t *testing.T) {
	table := messages.NewTable()

	text := table.Format(messages.EmptyTree, map[string]interface{}{
		"operation": "delete",
	})
	assert.Equal(t, "rbppavl [4]: delete requested on an empty tree", table.Qualified(messages.EmptyTree, text))

	assert.Equal(t, "unknown diagnostic code: 999", table.Format(messages.Code(999), nil))
}
