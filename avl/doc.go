// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a balanced binary search tree with a configurable
// ("relaxed") balance factor and parent pointers to allow iteration
// through the nodes without an auxiliary stack
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Ordering and uniqueness of the stored payloads are delegated to a
// comparison callback supplied at tree creation; payloads are opaque
// and stored by reference, the tree never copies or owns them.
//
// A balance factor of 1 gives a classic AVL tree; larger factors
// tolerate more skew in exchange for fewer rotations.  Each node
// caches the height of its sub-tree and the balance of a node is
// derived from the heights of its children, so rebalancing decisions
// never walk a sub-tree.
package avl
