// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// a node in the tree
type Node struct {
	left    *Node       // left sub-tree, owned
	right   *Node       // right sub-tree, owned
	up      *Node       // points to parent node, never an ownership edge
	payload interface{} // opaque data, the caller retains ownership
	height  int         // cached height of the sub-tree rooted here, leaf = 0
}

// height of a possibly absent sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// balance - right height less left height, derived from the children
func (p *Node) balance() int {
	return height(p.right) - height(p.left)
}

// resetHeight - recompute the cached height from the children
// returns true if the cached value changed
func (p *Node) resetHeight() bool {
	h := 1 + height(p.left)
	if hr := 1 + height(p.right); hr > h {
		h = hr
	}
	if h == p.height {
		return false
	}
	p.height = h
	return true
}

// Payload - read the payload stored at a node
func (p *Node) Payload() interface{} {
	return p.payload
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(payload interface{}) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			payload: payload,
			height:  0,
		}
	}
	p := pool
	pool = p.up
	p.payload = payload
	p.height = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.payload = nil
	node.height = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// wipe - remove the whole sub-tree rooted at p
//
// iterative post-order walk using the parent pointers, so call stack
// depth stays bounded on deep or low tolerance trees; each node is
// detached from its parent as it is removed
func wipe(p *Node, removed *int) {
	for nil != p {
		if nil != p.left {
			p = p.left
			continue
		}
		if nil != p.right {
			p = p.right
			continue
		}
		up := p.up
		if nil != up {
			if p == up.left {
				up.left = nil
			} else {
				up.right = nil
			}
		}
		freeNode(p)
		*removed += 1
		p = up
	}
}
