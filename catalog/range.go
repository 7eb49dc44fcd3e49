// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package catalog

// Range is a closed interval [Low, High] over record ids, used to
// bound a table scan (spec.md §3).
type Range struct {
	Low  int
	High int
}

// NewRange builds a Range covering [low, high].
func NewRange(low, high int) Range {
	return Range{Low: low, High: high}
}
