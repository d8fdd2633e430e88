// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/mondrake/Rbppavl/fault"
	"github.com/mondrake/Rbppavl/messages"
)

// diagnostic event source tags
const (
	treeSource   = "avl.Tree"
	cursorSource = "avl.Cursor"
)

// Tree - type to hold the root node of a tree
//
// the tree exclusively owns its node graph; parent pointers inside
// the graph are back-references only
type Tree struct {
	root          *Node
	count         int
	balanceFactor int
	limit         int // maximum node count, 0 = unlimited
	fatal         messages.Severity
	callback      Callback
	table         *messages.Table
	statistics    statistics
}

// New - create an initially empty tree
//
// the balance factor is the maximum tolerated difference between the
// heights of the two sub-trees of any node; 1 gives a classic AVL
// tree and the factor is fixed for the life of the tree
func New(callback Callback, balanceFactor int) (*Tree, error) {
	return NewWithLimit(callback, balanceFactor, 0)
}

// NewWithLimit - create an empty tree that refuses to grow beyond a
// fixed number of nodes
func NewWithLimit(callback Callback, balanceFactor int, limit int) (*Tree, error) {
	if nil == callback {
		return nil, fault.ErrNilCallback
	}
	if balanceFactor < 1 {
		return nil, fault.ErrBalanceFactorRange
	}
	tree := &Tree{
		root:          nil,
		count:         0,
		balanceFactor: balanceFactor,
		limit:         limit,
		fatal:         messages.Critical,
		callback:      callback,
		table:         messages.NewTable(),
	}
	_ = tree.report(messages.TreeCreated, map[string]interface{}{
		"factor": balanceFactor,
	})
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of payloads currently stored in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// BalanceFactor - the tolerance the tree was created with
func (tree *Tree) BalanceFactor() int {
	return tree.balanceFactor
}

// Height - height of the root node, -1 when the tree is empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Messages - the per tree diagnostic message table, severities and
// templates can be retuned through it
func (tree *Tree) Messages() *messages.Table {
	return tree.table
}

// SetFatalThreshold - events at or above this severity are escalated
// to the error handler of the callback
func (tree *Tree) SetFatalThreshold(severity messages.Severity) {
	tree.fatal = severity
}

// Wipe - tear down the whole tree, returns the number of nodes removed
//
// payloads are untouched, only the node graph is released
func (tree *Tree) Wipe() int {
	removed := 0
	wipe(tree.root, &removed)
	tree.root = nil
	tree.count = 0
	_ = tree.report(messages.TreeWiped, map[string]interface{}{
		"nodes": removed,
	})
	return removed
}

// report - route a diagnostic event through the callback
//
// the event always reaches DiagnosticMessage; at or above the fatal
// threshold it is escalated to ErrorHandler whose non-nil return is
// handed back for propagation to the caller
func (tree *Tree) report(code messages.Code, params map[string]interface{}) error {
	return tree.reportFrom(code, params, treeSource)
}

func (tree *Tree) reportFrom(code messages.Code, params map[string]interface{}, source string) error {
	severity := tree.table.Severity(code)
	text := tree.table.Format(code, params)
	qualified := tree.table.Qualified(code, text)
	tree.callback.DiagnosticMessage(severity, code, text, params, qualified, source)
	if severity >= tree.fatal {
		return tree.callback.ErrorHandler(code, text, params, qualified, source)
	}
	return nil
}

// integer absolute value, balances are small
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
