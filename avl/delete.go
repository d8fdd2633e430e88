// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/mondrake/Rbppavl/fault"
	"github.com/mondrake/Rbppavl/messages"
)

// Delete - remove the node matching a payload
//
// the stored payload is handed back to the caller untouched, or nil
// when no payload compares equal
func (tree *Tree) Delete(payload interface{}) (interface{}, error) {
	tree.statistics.deletes.Increment()
	if nil == payload {
		if err := tree.report(messages.NilPayload, map[string]interface{}{
			"operation": "delete",
		}); nil != err {
			return nil, err
		}
		return nil, fault.ErrNilPayload
	}
	if nil == tree.root {
		if err := tree.report(messages.EmptyTree, map[string]interface{}{
			"operation": "delete",
		}); nil != err {
			return nil, err
		}
		return nil, fault.ErrEmptyTree
	}

	d := tree.lookup(payload)
	p := d.found
	if nil == p {
		if err := tree.report(messages.PayloadNotFound, map[string]interface{}{
			"payload": tree.callback.Dump(payload),
		}); nil != err {
			return nil, err
		}
		return nil, nil
	}
	removed := p.payload

	var start *Node // the node whose sub-tree actually shrank

	switch {
	case nil == p.left && nil == p.right:
		tree.splice(p, nil)
		start = p.up

	case nil == p.left:
		tree.splice(p, p.right)
		start = p.up

	case nil == p.right:
		tree.splice(p, p.left)
		start = p.up

	default:
		r := p.right
		if nil == r.left {
			// r moves straight into p's position, keeping its own
			// right sub-tree and gaining p's left one
			r.left = p.left
			p.left.up = r
			r.height = p.height
			tree.splice(p, r)
			start = r
		} else {
			// s, the in-order successor of p, is detached from its
			// parent and takes p's position and both sub-trees; the
			// sub-tree that shrank is the one under s's old parent
			s := r.left.first()
			rp := s.up
			rp.left = s.right
			if nil != s.right {
				s.right.up = rp
			}
			s.left = p.left
			p.left.up = s
			s.right = p.right
			p.right.up = s
			s.height = p.height
			tree.splice(p, s)
			start = rp
		}
	}

	freeNode(p)
	tree.count -= 1
	tree.shrink(start)
	tree.statistics.deleteSuccesses.Increment()
	return removed, nil
}

// splice - replace node p by w in p's parent, or at the root
func (tree *Tree) splice(p *Node, w *Node) {
	up := p.up
	if nil != w {
		w.up = up
	}
	if nil == up {
		tree.root = w
	} else if p == up.left {
		up.left = w
	} else {
		up.right = w
	}
}

// shrink - rebalance upward from the point where a sub-tree lost height
//
// per level: a node out of tolerance is rotated and the walk stops if
// the rotation preserved the height it had on entering the level; a
// node within tolerance has its height recomputed and the walk stops
// if it is unchanged, the sub-tree has absorbed the shrinkage
func (tree *Tree) shrink(p *Node) {
	for nil != p {
		if abs(p.balance()) > tree.balanceFactor {
			before := p.height
			z := tree.rotate(p)
			if z.height == before {
				return
			}
			p = z.up
		} else {
			if !p.resetHeight() {
				tree.statistics.selfBalances.Increment()
				return
			}
			p = p.up
		}
	}
}
