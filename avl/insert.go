// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/mondrake/Rbppavl/fault"
	"github.com/mondrake/Rbppavl/messages"
)

// Insert - store a payload in the tree
//
// returns nil if the payload was newly stored, or the already stored
// payload, untouched, when one compares equal
func (tree *Tree) Insert(payload interface{}) (interface{}, error) {
	tree.statistics.inserts.Increment()
	return tree.insert(payload, "insert", false)
}

// Replace - store a payload in the tree, overwriting an equal one
//
// returns nil if the payload was newly stored, or the previous
// payload, now replaced, when one compared equal
func (tree *Tree) Replace(payload interface{}) (interface{}, error) {
	tree.statistics.replaces.Increment()
	return tree.insert(payload, "replace", true)
}

// internal routine for insert and replace
func (tree *Tree) insert(payload interface{}, operation string, replace bool) (interface{}, error) {
	if nil == payload {
		if err := tree.report(messages.NilPayload, map[string]interface{}{
			"operation": operation,
		}); nil != err {
			return nil, err
		}
		return nil, fault.ErrNilPayload
	}
	if 0 != tree.limit && tree.count >= tree.limit {
		if err := tree.report(messages.CapacityReached, map[string]interface{}{
			"limit": tree.limit,
		}); nil != err {
			return nil, err
		}
		return nil, fault.ErrCapacityLimit
	}

	d := tree.lookup(payload)
	if nil != d.found {
		previous := d.found.payload
		if replace {
			d.found.payload = payload
			tree.statistics.replaceSuccesses.Increment()
		} else {
			if err := tree.report(messages.PayloadExists, map[string]interface{}{
				"payload": tree.callback.Dump(payload),
			}); nil != err {
				return nil, err
			}
		}
		return previous, nil
	}

	n := newNode(payload)
	if nil == d.q { // first node of the tree
		tree.root = n
	} else {
		if dirLeft == d.dir {
			d.q.left = n
		} else {
			d.q.right = n
		}
		n.up = d.q
		tree.grow(n, d.y)
	}
	tree.count += 1
	tree.statistics.insertSuccesses.Increment()
	return nil, nil
}

// grow - propagate the height increase of a freshly attached node
// upward to the pivot candidate
//
// an ancestor whose balance already compensates the growth direction
// absorbs the change: propagation stops there and nothing above is
// touched.  Otherwise each ancestor gains one level up to and
// including the pivot, which is then rotated if it went out of
// tolerance - a single insertion needs at most one rotation.
func (tree *Tree) grow(n *Node, y *Node) {
	p := n
	for anc := n.up; nil != anc; anc = anc.up {
		if p == anc.left {
			// left branch has grown
			if anc.balance() >= 0 {
				tree.statistics.selfBalances.Increment()
				return
			}
		} else {
			// right branch has grown
			if anc.balance() <= 0 {
				tree.statistics.selfBalances.Increment()
				return
			}
		}
		anc.height += 1
		if anc == y {
			break
		}
		p = anc
	}
	if abs(y.balance()) > tree.balanceFactor {
		tree.rotate(y)
	}
}
