// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messages - catalog of diagnostic status messages
//
// Each condition the tree can report is identified by a Code with a
// default severity and a human readable template.  A Table is held
// per tree instance so an embedding application can retune severities
// or reword templates without affecting other trees in the process.
package messages
