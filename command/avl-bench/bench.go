// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/mondrake/Rbppavl/avl"
	"github.com/mondrake/Rbppavl/diagnostic"
)

// integer payloads for the workload
type intCallback struct {
	*diagnostic.Sink
}

// Compare - numeric ordering for the tree
func (cb intCallback) Compare(a interface{}, b interface{}) int {
	x := a.(int)
	y := b.(int)
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	default:
		return 0
	}
}

// Dump - payload display form
func (cb intCallback) Dump(a interface{}) string {
	return strconv.Itoa(a.(int))
}

// runWorkload - insert, traverse, search and delete random
// permutations, validating the tree between phases
func runWorkload(log *logger.L, workload *WorkloadType) error {

	seed := workload.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	callback := intCallback{diagnostic.New("avl")}

	log.Infof("workload: items: %d  balance factor: %d  passes: %d  seed: %d",
		workload.Items, workload.BalanceFactor, workload.Passes, seed)

	for pass := 1; pass <= workload.Passes; pass += 1 {

		var tree *avl.Tree
		var err error
		if 0 == workload.Limit {
			tree, err = avl.New(callback, workload.BalanceFactor)
		} else {
			tree, err = avl.NewWithLimit(callback, workload.BalanceFactor, workload.Limit)
		}
		if nil != err {
			return err
		}

		keys := rnd.Perm(workload.Items)

		// insert phase
		start := time.Now()
		for _, key := range keys {
			if _, err := tree.Insert(key); nil != err {
				return err
			}
		}
		log.Infof("pass %d: inserted %d payloads in %s  height: %d",
			pass, tree.Count(), time.Since(start), tree.Height())

		if err := validate(tree); nil != err {
			return err
		}

		// ordered traversal phase, forward then backward
		cursor := tree.NewCursor()
		n := 0
		previous := -1
		for payload := cursor.First(); nil != payload; payload = cursor.Next() {
			key := payload.(int)
			if key <= previous {
				return fmt.Errorf("pass %d: out of order: %d after %d", pass, key, previous)
			}
			previous = key
			n += 1
		}
		if n != workload.Items {
			return fmt.Errorf("pass %d: forward traversal visited %d of %d", pass, n, workload.Items)
		}
		n = 0
		for payload := cursor.Last(); nil != payload; payload = cursor.Prev() {
			n += 1
		}
		if n != workload.Items {
			return fmt.Errorf("pass %d: backward traversal visited %d of %d", pass, n, workload.Items)
		}

		// search phase - every key must be found exactly
		for _, key := range keys {
			payload, err := tree.Find(key, avl.MatchExact)
			if nil != err {
				return err
			}
			if nil == payload {
				return fmt.Errorf("pass %d: missing payload: %d", pass, key)
			}
		}

		if workload.PrintTree {
			tree.Print(true)
		}

		// delete phase, fresh permutation
		order := rnd.Perm(workload.Items)
		start = time.Now()
		for _, key := range order {
			payload, err := tree.Delete(key)
			if nil != err {
				return err
			}
			if nil == payload {
				return fmt.Errorf("pass %d: delete missed payload: %d", pass, key)
			}
		}
		log.Infof("pass %d: deleted %d payloads in %s", pass, len(order), time.Since(start))

		if !tree.IsEmpty() || 0 != tree.Count() {
			return fmt.Errorf("pass %d: tree not empty after deletes: %d", pass, tree.Count())
		}

		s := tree.Statistics()
		log.Infof("pass %d: inserts: %d/%d  deletes: %d/%d  self balances: %d",
			pass, s.InsertSuccesses, s.Inserts, s.DeleteSuccesses, s.Deletes, s.SelfBalances)
		log.Infof("pass %d: rotations: LL: %d  LR: %d  RR: %d  RL: %d  total: %d",
			pass, s.RotationLL, s.RotationLR, s.RotationRR, s.RotationRL, s.Rotations())
	}

	return nil
}

// validate - structural checks, fails the run on the first fault
func validate(tree *avl.Tree) error {
	if !tree.CheckUp() {
		return fmt.Errorf("inconsistent parent pointers")
	}
	if p, f := tree.Check(); nil != p {
		return fmt.Errorf("inconsistent tree: %s check failed at: %v", f, p.Payload())
	}
	return nil
}
