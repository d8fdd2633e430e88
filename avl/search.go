// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/mondrake/Rbppavl/fault"
	"github.com/mondrake/Rbppavl/messages"
)

// Match - how a search resolves when no payload compares equal
type Match int

// available match modes
const (
	MatchExact Match = iota // only an equal payload
	MatchPrev               // highest payload not above the target
	MatchNext               // lowest payload not below the target
)

// descent directions
const (
	dirLeft  = 0
	dirRight = 1
)

// the outcome of one descent from the root
type descent struct {
	found *Node // exact match, nil if none
	q     *Node // last non-nil node visited, the would-be parent
	dir   int   // direction of the last step taken from q
	y     *Node // deepest node at the edge of tolerance, rotation pivot candidate
}

// walk down from the root comparing the target against stored
// payloads, recording the would-be parent, the last direction taken
// and the pivot candidate for a later rebalance
func (tree *Tree) lookup(target interface{}) descent {
	d := descent{
		y: tree.root,
	}
	p := tree.root
	for nil != p {
		cmp := tree.callback.Compare(target, p.payload)
		if 0 == cmp {
			d.found = p
			return d
		}
		if abs(p.balance()) == tree.balanceFactor {
			d.y = p
		}
		d.q = p
		if cmp < 0 {
			d.dir = dirLeft
			p = p.left
		} else {
			d.dir = dirRight
			p = p.right
		}
	}
	return d
}

// find - resolve a target according to the match mode
//
// shared by the tree and by cursors; the tree must not be empty.
// On a miss the last direction decides: a final left step means the
// would-be parent is the successor of the target, a final right step
// that it is the predecessor.  There is no descent-free termination:
// the root comparison always sets the direction.
func (tree *Tree) find(target interface{}, match Match) *Node {
	d := tree.lookup(target)
	if nil != d.found {
		return d.found
	}
	switch match {
	case MatchPrev:
		if dirLeft == d.dir {
			return d.q.Prev()
		}
		return d.q
	case MatchNext:
		if dirRight == d.dir {
			return d.q.Next()
		}
		return d.q
	default:
		return nil
	}
}

// Find - search for a payload
//
// returns the matching payload under the given mode or nil if there
// is none; an empty tree or a nil target is a recoverable failure
func (tree *Tree) Find(payload interface{}, match Match) (interface{}, error) {
	if nil == payload {
		if err := tree.report(messages.NilPayload, map[string]interface{}{
			"operation": "find",
		}); nil != err {
			return nil, err
		}
		return nil, fault.ErrNilPayload
	}
	if match < MatchExact || match > MatchNext {
		return nil, fault.ErrInvalidMatchMode
	}
	if nil == tree.root {
		if err := tree.report(messages.EmptyTree, map[string]interface{}{
			"operation": "find",
		}); nil != err {
			return nil, err
		}
		return nil, fault.ErrEmptyTree
	}
	p := tree.find(payload, match)
	if nil == p {
		if err := tree.report(messages.PayloadNotFound, map[string]interface{}{
			"payload": tree.callback.Dump(payload),
		}); nil != err {
			return nil, err
		}
		return nil, nil
	}
	return p.payload, nil
}
