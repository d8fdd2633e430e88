// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// payloads are rendered through the Dump callback; purely a debug
// aid, returns the maximum depth of the tree
func (tree *Tree) Print(printData bool) int {
	return tree.printTree(tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func (tree *Tree) printTree(p *Node, prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = tree.printTree(p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := "^nil"
	if nil != p.up {
		up = "^" + tree.callback.Dump(p.up.payload)
	}
	if printData {
		fmt.Printf("%q %s h=%d %+d\n", tree.callback.Dump(p.payload), up, p.height, p.balance())
	} else {
		fmt.Printf("%q %s\n", tree.callback.Dump(p.payload), up)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = tree.printTree(p.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
