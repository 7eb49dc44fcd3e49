// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package catalog

// Allocator is a small owned counter handing out monotonically
// increasing record ids for a single table. It is never shared across
// tables — each TableInfo owns one (spec.md §9).
type Allocator struct {
	base int
}

// NewAllocator builds an Allocator whose first allocation is base.
func NewAllocator(base int) *Allocator {
	return &Allocator{base: base}
}

// Base returns the next value this Allocator will hand out.
func (a *Allocator) Base() int {
	return a.base
}

// Increment advances the allocator past the value just handed out.
func (a *Allocator) Increment() {
	a.base++
}
