// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotate - restore tolerance at node y, returns the new sub-tree root
//
// exactly four cases, chosen by the sign of the balance of y and the
// sign of the balance of the heavy child: single rotations LL/RR and
// double rotations LR/RL.  The new sub-tree root is reattached to
// y's former parent on the correct side, or becomes the tree root.
// Heights are reset bottom-up on the nodes that moved; shared by the
// insert and delete walks.
func (tree *Tree) rotate(y *Node) *Node {
	up := y.up
	wasLeft := nil != up && y == up.left

	var z *Node
	if y.balance() < 0 { // left heavy
		x := y.left
		if x.balance() <= 0 {
			// single LL rotation
			y.left = x.right
			if nil != y.left {
				y.left.up = y
			}
			x.right = y
			y.up = x
			y.resetHeight()
			x.resetHeight()
			tree.statistics.rotationLL.Increment()
			z = x
		} else {
			// double LR rotation
			w := x.right
			x.right = w.left
			if nil != x.right {
				x.right.up = x
			}
			w.left = x
			x.up = w
			y.left = w.right
			if nil != y.left {
				y.left.up = y
			}
			w.right = y
			y.up = w
			y.resetHeight()
			x.resetHeight()
			w.resetHeight()
			tree.statistics.rotationLR.Increment()
			z = w
		}
	} else { // right heavy
		x := y.right
		if x.balance() >= 0 {
			// single RR rotation
			y.right = x.left
			if nil != y.right {
				y.right.up = y
			}
			x.left = y
			y.up = x
			y.resetHeight()
			x.resetHeight()
			tree.statistics.rotationRR.Increment()
			z = x
		} else {
			// double RL rotation
			w := x.left
			x.left = w.right
			if nil != x.left {
				x.left.up = x
			}
			w.right = x
			x.up = w
			y.right = w.left
			if nil != y.right {
				y.right.up = y
			}
			w.left = y
			y.up = w
			y.resetHeight()
			x.resetHeight()
			w.resetHeight()
			tree.statistics.rotationRL.Increment()
			z = w
		}
	}

	z.up = up
	if nil == up {
		tree.root = z
	} else if wasLeft {
		up.left = z
	} else {
		up.right = z
	}
	return z
}
