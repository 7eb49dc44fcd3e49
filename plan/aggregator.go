// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package plan

import (
	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/field"
	"github.com/terakoya76/puresql-sub000/row"
)

// Aggregator accumulates one aggregate function's running state across
// the rows of a single group. Unlike Selector, an Aggregator's error is
// fatal to the statement: the Aggregation operator returns it from
// Next rather than skipping the row, since a missing column means the
// query itself is malformed.
type Aggregator interface {
	// Update folds tuple's value into the running result.
	Update(tuple row.Tuple, columns []catalog.Column) error
	// Result returns the current accumulated value.
	Result() field.Field
	// Clone returns a fresh Aggregator of the same kind and target,
	// with Init state, used when a new group key is first observed.
	Clone() Aggregator
}

// Count counts every row it sees; it never errors and needs no target.
// Its result starts at Init and every update adds U64(1), so the
// result it fetches is always a U64, never an I64.
type Count struct {
	result field.Field
}

// NewCount builds a Count aggregator.
func NewCount() *Count { return &Count{result: field.NewInit()} }

// Update implements Aggregator.
func (c *Count) Update(row.Tuple, []catalog.Column) error {
	c.result = c.result.Add(field.NewU64(1))
	return nil
}

// Result implements Aggregator.
func (c *Count) Result() field.Field { return c.result }

// Clone implements Aggregator.
func (c *Count) Clone() Aggregator { return NewCount() }

// Sum accumulates the running total of one column.
type Sum struct {
	table  *string
	column string
	result field.Field
}

// NewSum builds a Sum aggregator over table.column.
func NewSum(table *string, column string) *Sum {
	return &Sum{table: table, column: column, result: field.NewInit()}
}

// Update implements Aggregator.
func (s *Sum) Update(tuple row.Tuple, columns []catalog.Column) error {
	v, err := findField(tuple, columns, s.table, s.column)
	if err != nil {
		return err
	}
	s.result = s.result.Add(v)
	return nil
}

// Result implements Aggregator.
func (s *Sum) Result() field.Field { return s.result }

// Clone implements Aggregator.
func (s *Sum) Clone() Aggregator { return NewSum(s.table, s.column) }

// Average accumulates a running sum and row count, dividing on Result.
type Average struct {
	table  *string
	column string
	sum    field.Field
	n      int
}

// NewAverage builds an Average aggregator over table.column.
func NewAverage(table *string, column string) *Average {
	return &Average{table: table, column: column, sum: field.NewInit()}
}

// Update implements Aggregator.
func (a *Average) Update(tuple row.Tuple, columns []catalog.Column) error {
	v, err := findField(tuple, columns, a.table, a.column)
	if err != nil {
		return err
	}
	a.sum = a.sum.Add(v)
	a.n++
	return nil
}

// Result implements Aggregator. Dividing by zero rows returns Init,
// since Div on an Init accumulator already does.
func (a *Average) Result() field.Field {
	return a.sum.Div(a.sum.SameKindFrom(a.n))
}

// Clone implements Aggregator.
func (a *Average) Clone() Aggregator { return NewAverage(a.table, a.column) }

// Min tracks the smallest value a column has taken within a group.
type Min struct {
	table  *string
	column string
	result field.Field
}

// NewMin builds a Min aggregator over table.column.
func NewMin(table *string, column string) *Min {
	return &Min{table: table, column: column, result: field.NewInit()}
}

// Update implements Aggregator. Init is treated as absent: the first
// real value seen always replaces it, since Field ordering is only
// defined within a single kind and Init shares no kind with any value.
func (m *Min) Update(tuple row.Tuple, columns []catalog.Column) error {
	v, err := findField(tuple, columns, m.table, m.column)
	if err != nil {
		return err
	}
	if m.result.Kind() == field.Init || v.Less(m.result) {
		m.result = v
	}
	return nil
}

// Result implements Aggregator.
func (m *Min) Result() field.Field { return m.result }

// Clone implements Aggregator.
func (m *Min) Clone() Aggregator { return NewMin(m.table, m.column) }

// Max tracks the largest value a column has taken within a group.
type Max struct {
	table  *string
	column string
	result field.Field
}

// NewMax builds a Max aggregator over table.column.
func NewMax(table *string, column string) *Max {
	return &Max{table: table, column: column, result: field.NewInit()}
}

// Update implements Aggregator. See Min.Update for the Init-as-absent
// rule.
func (m *Max) Update(tuple row.Tuple, columns []catalog.Column) error {
	v, err := findField(tuple, columns, m.table, m.column)
	if err != nil {
		return err
	}
	if m.result.Kind() == field.Init || v.Greater(m.result) {
		m.result = v
	}
	return nil
}

// Result implements Aggregator.
func (m *Max) Result() field.Field { return m.result }

// Clone implements Aggregator.
func (m *Max) Clone() Aggregator { return NewMax(m.table, m.column) }

// BuildAggregator compiles an ast.Aggregate call into its Aggregator.
// SUM, AVG, MIN, and MAX require a column Target argument; only COUNT
// accepts the "*" wildcard.
func BuildAggregator(a ast.Aggregate) (Aggregator, error) {
	switch a.Kind {
	case ast.AggregateCount:
		return NewCount(), nil
	case ast.AggregateSum:
		if a.Arg.Target == nil {
			return nil, ErrUnexpectedAggregateArg
		}
		return NewSum(a.Arg.Target.TableName, a.Arg.Target.Name), nil
	case ast.AggregateAverage:
		if a.Arg.Target == nil {
			return nil, ErrUnexpectedAggregateArg
		}
		return NewAverage(a.Arg.Target.TableName, a.Arg.Target.Name), nil
	case ast.AggregateMin:
		if a.Arg.Target == nil {
			return nil, ErrUnexpectedAggregateArg
		}
		return NewMin(a.Arg.Target.TableName, a.Arg.Target.Name), nil
	case ast.AggregateMax:
		if a.Arg.Target == nil {
			return nil, ErrUnexpectedAggregateArg
		}
		return NewMax(a.Arg.Target.TableName, a.Arg.Target.Name), nil
	default:
		return nil, ErrUnexpectedAggregateArg
	}
}
