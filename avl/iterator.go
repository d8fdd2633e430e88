// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest payload
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest payload
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest payload
// or nil if no more nodes.
//
// the ascent uses pointer identity only, the comparison callback is
// never consulted
func (p *Node) Next() *Node {
	if p.right == nil {
		for {
			up := p.up
			if up == nil {
				return nil
			}
			if p == up.left {
				return up
			}
			p = up
		}
	}
	return p.right.first()
}

// Prev - given a node, return the node with the next lowest payload
// or nil if no more nodes
func (p *Node) Prev() *Node {
	if p.left == nil {
		for {
			up := p.up
			if up == nil {
				return nil
			}
			if p == up.right {
				return up
			}
			p = up
		}
	}
	return p.left.last()
}
