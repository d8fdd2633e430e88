// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/mondrake/Rbppavl/fault"
	"github.com/mondrake/Rbppavl/messages"
)

// Cursor - a movable position in the ordered payload sequence of one
// tree
//
// a cursor holds only a non owning reference into the node graph: it
// must not outlive its tree and any structural change to the tree
// invalidates the current position.  Traversal uses the parent
// pointer walks, no stack is kept.
type Cursor struct {
	tree    *Tree
	current *Node
}

// NewCursor - create a cursor bound to this tree
//
// the cursor starts unpositioned: move it with First, Last or Find
func (tree *Tree) NewCursor() *Cursor {
	return &Cursor{
		tree: tree,
	}
}

// First - move to the lowest payload, nil when the tree is empty
//
// a detached cursor stays unpositioned
func (cursor *Cursor) First() interface{} {
	if nil == cursor.tree {
		return nil
	}
	cursor.current = cursor.tree.root.first()
	return cursor.payload()
}

// Last - move to the highest payload, nil when the tree is empty
func (cursor *Cursor) Last() interface{} {
	if nil == cursor.tree {
		return nil
	}
	cursor.current = cursor.tree.root.last()
	return cursor.payload()
}

// Next - advance to the next payload in order, nil when exhausted
//
// an unpositioned cursor stays unpositioned
func (cursor *Cursor) Next() interface{} {
	if nil == cursor.current {
		return nil
	}
	cursor.current = cursor.current.Next()
	return cursor.payload()
}

// Prev - step back to the previous payload in order, nil when exhausted
func (cursor *Cursor) Prev() interface{} {
	if nil == cursor.current {
		return nil
	}
	cursor.current = cursor.current.Prev()
	return cursor.payload()
}

// Current - the payload at the cursor position, never moves the cursor
func (cursor *Cursor) Current() interface{} {
	return cursor.payload()
}

// Node - the node at the cursor position, nil when unpositioned
func (cursor *Cursor) Node() *Node {
	return cursor.current
}

// Find - position the cursor using the shared tree search
//
// returns the payload at the new position; a miss leaves the cursor
// unpositioned
func (cursor *Cursor) Find(payload interface{}, match Match) (interface{}, error) {
	tree := cursor.tree
	if nil == tree {
		return nil, fault.ErrCursorDetached
	}
	if nil == payload {
		if err := tree.reportFrom(messages.NilPayload, map[string]interface{}{
			"operation": "cursor find",
		}, cursorSource); nil != err {
			return nil, err
		}
		return nil, fault.ErrNilPayload
	}
	if match < MatchExact || match > MatchNext {
		return nil, fault.ErrInvalidMatchMode
	}
	if nil == tree.root {
		cursor.current = nil
		if err := tree.reportFrom(messages.EmptyTree, map[string]interface{}{
			"operation": "cursor find",
		}, cursorSource); nil != err {
			return nil, err
		}
		return nil, fault.ErrEmptyTree
	}
	cursor.current = tree.find(payload, match)
	return cursor.payload(), nil
}

func (cursor *Cursor) payload() interface{} {
	if nil == cursor.current {
		return nil
	}
	return cursor.current.payload
}
