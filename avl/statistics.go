// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/mondrake/Rbppavl/counter"
)

// internal operation counters
//
// a "successful insert" is any newly stored payload, whether it came
// in through Insert or Replace, so that at all times:
//   Count() == InsertSuccesses - DeleteSuccesses
// a "successful replace" is an overwrite of an existing payload
type statistics struct {
	inserts          counter.Counter
	insertSuccesses  counter.Counter
	replaces         counter.Counter
	replaceSuccesses counter.Counter
	deletes          counter.Counter
	deleteSuccesses  counter.Counter
	selfBalances     counter.Counter
	rotationLL       counter.Counter
	rotationLR       counter.Counter
	rotationRR       counter.Counter
	rotationRL       counter.Counter
}

// Statistics - a point in time snapshot of the operation counters
type Statistics struct {
	Inserts          uint64
	InsertSuccesses  uint64
	Replaces         uint64
	ReplaceSuccesses uint64
	Deletes          uint64
	DeleteSuccesses  uint64
	SelfBalances     uint64
	RotationLL       uint64
	RotationLR       uint64
	RotationRR       uint64
	RotationRL       uint64
}

// Rotations - total rotations of all four kinds
func (s Statistics) Rotations() uint64 {
	return s.RotationLL + s.RotationLR + s.RotationRR + s.RotationRL
}

// Statistics - take a snapshot of the counters
func (tree *Tree) Statistics() Statistics {
	return Statistics{
		Inserts:          tree.statistics.inserts.Uint64(),
		InsertSuccesses:  tree.statistics.insertSuccesses.Uint64(),
		Replaces:         tree.statistics.replaces.Uint64(),
		ReplaceSuccesses: tree.statistics.replaceSuccesses.Uint64(),
		Deletes:          tree.statistics.deletes.Uint64(),
		DeleteSuccesses:  tree.statistics.deleteSuccesses.Uint64(),
		SelfBalances:     tree.statistics.selfBalances.Uint64(),
		RotationLL:       tree.statistics.rotationLL.Uint64(),
		RotationLR:       tree.statistics.rotationLR.Uint64(),
		RotationRR:       tree.statistics.rotationRR.Uint64(),
		RotationRL:       tree.statistics.rotationRL.Uint64(),
	}
}
