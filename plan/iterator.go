// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package plan implements the physical operators the engine composes
// into a fixed pipeline per query: table-scan, selection, projection,
// nested-loop join, and aggregation, plus the selector compiler and
// aggregator contract they share. Every operator implements Iterator,
// which is what lets them be composed by reference without either
// side knowing the other's concrete type (spec.md §4.4).
package plan

import (
	"errors"

	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/row"
)

// ErrColumnNotFound is returned when a selector or aggregator
// references a column absent from the operator's schema.
var ErrColumnNotFound = errors.New("plan: column not found")

// ErrUnexpectedRightHand is returned when a selector compiles without
// either a target or a literal on its right-hand side.
var ErrUnexpectedRightHand = errors.New("plan: condition has no right-hand side")

// ErrUnexpectedAggregateArg is returned when an aggregate function
// that requires a column target (SUM, AVG, MIN, MAX) is built from a
// non-Target Aggregatable.
var ErrUnexpectedAggregateArg = errors.New("plan: aggregate requires a column target")

// Iterator is the uniform capability every physical operator exposes:
// pull one tuple at a time (forward-only, non-restartable, finite),
// and expose the schema of the tuples it produces. Table-wide errors
// (e.g. a missing column an aggregator was built against) are
// returned from Next so the caller can abort the statement; row-local
// predicate errors are swallowed by Selection per spec.md §4.6 and
// never reach here as an error.
type Iterator interface {
	// Next pulls the next tuple. ok is false once the iterator is
	// exhausted; once false, every subsequent call also returns false
	// (exhausted state is sticky, spec.md §4.5).
	Next() (tuple row.Tuple, ok bool, err error)
	// Meta returns the schema of the tuples this operator produces.
	Meta() *catalog.TableInfo
	// Columns returns the fully-qualified column list, aligned with
	// tuple field offsets.
	Columns() []catalog.Column
}
