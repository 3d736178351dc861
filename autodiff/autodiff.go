// Copyright 2025 Seed ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public API for tape-based reverse-mode
// automatic differentiation.
//
// Operations executed during the forward pass are recorded on a Tape in
// creation order; Backward walks the tape in reverse, which is a valid
// topological order, and accumulates gradients onto every tensor that
// contributed to the loss.
//
// Example:
//
//	tape := autodiff.NewTape()
//	tape.StartRecording()
//	logits, _ := model.Forward(tape, inputs)
//	loss, _ := lossFn.Forward(tape, logits, labels)
//	err := tape.Backward(loss)
package autodiff

import (
	"github.com/seed-ml/seed/internal/autodiff"
	"github.com/seed-ml/seed/internal/autodiff/ops"
)

// Tape records operations during the forward pass and drives the
// backward pass.
type Tape = autodiff.Tape

// Operation is one recorded node: it knows its inputs, its output, and
// how to map an upstream gradient to per-input gradients.
type Operation = ops.Operation

// NewTape creates a new, non-recording tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}
