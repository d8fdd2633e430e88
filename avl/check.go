// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/mondrake/Rbppavl/messages"
)

// CheckFault - which validator check a node failed
type CheckFault int

// validator outcomes
const (
	CheckNone    CheckFault = iota // tree is consistent
	CheckHeight                    // cached height differs from recomputation
	CheckBalance                   // balance beyond the tolerance
)

// String - display name of a validator outcome
func (fault CheckFault) String() string {
	switch fault {
	case CheckNone:
		return "none"
	case CheckHeight:
		return "height"
	case CheckBalance:
		return "balance"
	default:
		return fmt.Sprintf("fault:%d", int(fault))
	}
}

// Check - recompute every cached height from scratch and verify the
// tolerance of every node
//
// returns the first inconsistent node tagged with the failed check,
// or nil when the whole tree is consistent.  Intended for test
// harnesses, not the hot path.
func (tree *Tree) Check() (*Node, CheckFault) {
	p, f, _ := tree.check(tree.root)
	return p, f
}

// internal: post-order consistency checker, returns computed height
func (tree *Tree) check(p *Node) (*Node, CheckFault, int) {
	if nil == p {
		return nil, CheckNone, -1
	}
	n, f, lh := tree.check(p.left)
	if nil != n {
		return n, f, 0
	}
	n, f, rh := tree.check(p.right)
	if nil != n {
		return n, f, 0
	}
	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		_ = tree.report(messages.HeightMismatch, map[string]interface{}{
			"cached":   p.height,
			"computed": h,
			"payload":  tree.callback.Dump(p.payload),
		})
		return p, CheckHeight, 0
	}
	if abs(rh-lh) > tree.balanceFactor {
		_ = tree.report(messages.OutOfTolerance, map[string]interface{}{
			"balance": rh - lh,
			"factor":  tree.balanceFactor,
			"payload": tree.callback.Dump(p.payload),
		})
		return p, CheckBalance, 0
	}
	return nil, CheckNone, h
}

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return tree.checkup(tree.root, nil)
}

// internal: consistency checker
func (tree *Tree) checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n",
			tree.callback.Dump(p.payload), p.up, up)
		return false
	}
	if !tree.checkup(p.left, p) {
		return false
	}
	return tree.checkup(p.right, p)
}
