// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"testing"

	"github.com/mondrake/Rbppavl/messages"
)

// minimal callback for hand-built trees
type plainCallback struct{}

func (plainCallback) Compare(a interface{}, b interface{}) int {
	return a.(int) - b.(int)
}

func (plainCallback) Dump(a interface{}) string {
	return strconv.Itoa(a.(int))
}

func (plainCallback) DiagnosticMessage(severity messages.Severity, code messages.Code, text string, params map[string]interface{}, qualifiedText string, source string) {
}

func (plainCallback) ErrorHandler(code messages.Code, text string, params map[string]interface{}, qualifiedText string, source string) error {
	return nil
}

// the validator must flag a cached height that disagrees with a
// bottom-up recomputation
func TestCheckHeightMismatch(t *testing.T) {
	tree, err := New(plainCallback{}, 1)
	if nil != err {
		t.Fatalf("cannot create tree: %s", err)
	}
	for _, item := range []int{4, 2, 6, 1, 3, 5, 7} {
		_, err := tree.Insert(item)
		if nil != err {
			t.Fatalf("insert: %d  error: %s", item, err)
		}
	}

	if p, f := tree.Check(); nil != p {
		t.Fatalf("fresh tree inconsistent: %s at %v", f, p.payload)
	}

	tree.root.left.height = 7 // corrupt the cache

	p, f := tree.Check()
	if nil == p {
		t.Fatal("corruption not detected")
	}
	if CheckHeight != f {
		t.Fatalf("fault: actual: %s  expected: %s", f, CheckHeight)
	}
	if 2 != p.payload {
		t.Fatalf("flagged node: actual: %v  expected: 2", p.payload)
	}
}

// a structurally imbalanced tree with exact cached heights must be
// flagged on tolerance, not on the height cache
func TestCheckOutOfTolerance(t *testing.T) {
	tree, err := New(plainCallback{}, 1)
	if nil != err {
		t.Fatalf("cannot create tree: %s", err)
	}

	// hand-linked descending chain, heights are all correct
	n3 := &Node{payload: 3, height: 2}
	n2 := &Node{payload: 2, height: 1, up: n3}
	n1 := &Node{payload: 1, height: 0, up: n2}
	n3.left = n2
	n2.left = n1
	tree.root = n3
	tree.count = 3

	if !tree.CheckUp() {
		t.Fatal("up pointers rejected")
	}
	p, f := tree.Check()
	if nil == p {
		t.Fatal("imbalance not detected")
	}
	if CheckBalance != f {
		t.Fatalf("fault: actual: %s  expected: %s", f, CheckBalance)
	}
	if 3 != p.payload {
		t.Fatalf("flagged node: actual: %v  expected: 3", p.payload)
	}
}

func TestCheckUpBrokenPointer(t *testing.T) {
	tree, err := New(plainCallback{}, 1)
	if nil != err {
		t.Fatalf("cannot create tree: %s", err)
	}
	for _, item := range []int{2, 1, 3} {
		_, err := tree.Insert(item)
		if nil != err {
			t.Fatalf("insert: %d  error: %s", item, err)
		}
	}

	if !tree.CheckUp() {
		t.Fatal("fresh tree rejected")
	}

	tree.root.left.up = tree.root.right // corrupt a parent pointer

	if tree.CheckUp() {
		t.Fatal("broken up pointer not detected")
	}
}

// validator findings pass through the diagnostic reporting chain
func TestCheckReportsDiagnostics(t *testing.T) {
	cb := &codesCallback{}
	tree, err := New(cb, 1)
	if nil != err {
		t.Fatalf("cannot create tree: %s", err)
	}
	_, _ = tree.Insert(1)
	_, _ = tree.Insert(2)
	tree.root.height = 9

	_, _ = tree.Check()

	found := false
	for _, code := range cb.codes {
		if messages.HeightMismatch == code {
			found = true
		}
	}
	if !found {
		t.Fatalf("height mismatch not reported: %v", cb.codes)
	}
}

type codesCallback struct {
	plainCallback
	codes []messages.Code
}

func (cb *codesCallback) DiagnosticMessage(severity messages.Severity, code messages.Code, text string, params map[string]interface{}, qualifiedText string, source string) {
	cb.codes = append(cb.codes, code)
}

// reclaimed nodes come back out of the pool
func TestNodePoolRecycling(t *testing.T) {
	tree, err := New(plainCallback{}, 1)
	if nil != err {
		t.Fatalf("cannot create tree: %s", err)
	}

	_, _ = tree.Insert(1)
	recycled := tree.root
	_, _ = tree.Delete(1)

	_, _ = tree.Insert(2)
	if recycled != tree.root {
		t.Error("freed node was not recycled")
	}
	if 2 != tree.root.payload || 0 != tree.root.height {
		t.Fatalf("recycled node not reset: %v h=%d", tree.root.payload, tree.root.height)
	}
	if nil != tree.root.left || nil != tree.root.right || nil != tree.root.up {
		t.Fatal("recycled node keeps stale links")
	}
	_, _ = tree.Delete(2)
}
