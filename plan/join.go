// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package plan

import (
	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/row"
)

// NestedLoopJoin pairs one outer tuple with one inner tuple per call:
// advance outer, advance inner once, emit outer.append(inner). It does
// not restart the inner iterator, so it only ever produces
// min(|outer|, |inner|) candidate pairs rather than a true Cartesian
// product — callers wanting every outer row paired with every inner
// row must materialize and rebuild the inner side themselves before
// joining.
type NestedLoopJoin struct {
	outer, inner Iterator
	meta         *catalog.TableInfo
	columns      []catalog.Column
	selectors    []Selector
}

// NewNestedLoopJoin builds a join of outer and inner, filtered by the
// optional cond. cond is compiled against the join's synthesized
// schema (outer's columns followed by inner's, with inner's offsets
// shifted by outer's column count), so a qualified reference to either
// side resolves correctly.
func NewNestedLoopJoin(outer, inner Iterator, cond *ast.Conditions) (*NestedLoopJoin, error) {
	outerInfo := outer.Meta()
	innerInfo := inner.Meta()

	columnInfos := make([]catalog.ColumnInfo, 0, len(outerInfo.Columns)+len(innerInfo.Columns))
	columnInfos = append(columnInfos, outerInfo.Columns...)
	shift := len(outerInfo.Columns)
	for i, ci := range innerInfo.Columns {
		columnInfos = append(columnInfos, catalog.ColumnInfo{
			Name:   ci.Name,
			DType:  ci.DType,
			Offset: shift + i,
		})
	}
	meta := catalog.NewTableInfo(0, "", columnInfos)

	outerColumns := outer.Columns()
	innerColumns := inner.Columns()
	columns := make([]catalog.Column, 0, len(outerColumns)+len(innerColumns))
	columns = append(columns, outerColumns...)
	for i, c := range innerColumns {
		columns = append(columns, catalog.Column{
			TableName: c.TableName,
			Name:      c.Name,
			DType:     c.DType,
			Offset:    shift + i,
		})
	}

	selectors, err := BuildSelectors(cond)
	if err != nil {
		return nil, err
	}

	return &NestedLoopJoin{
		outer:     outer,
		inner:     inner,
		meta:      meta,
		columns:   columns,
		selectors: selectors,
	}, nil
}

// Meta implements Iterator.
func (j *NestedLoopJoin) Meta() *catalog.TableInfo { return j.meta }

// Columns implements Iterator.
func (j *NestedLoopJoin) Columns() []catalog.Column { return j.columns }

// Next implements Iterator. Once either side is exhausted, every
// subsequent call also reports exhausted: the outer side that still
// had rows remaining is never revisited, matching the upstream engine
// this was distilled from, which silently drains and discards it.
func (j *NestedLoopJoin) Next() (row.Tuple, bool, error) {
	for {
		outerTuple, ok, err := j.outer.Next()
		if err != nil {
			return row.Tuple{}, false, err
		}
		if !ok {
			return row.Tuple{}, false, nil
		}

		innerTuple, ok, err := j.inner.Next()
		if err != nil {
			return row.Tuple{}, false, err
		}
		if !ok {
			return row.Tuple{}, false, nil
		}

		joined := outerTuple.Append(innerTuple)
		if j.passes(joined) {
			return joined, true, nil
		}
	}
}

func (j *NestedLoopJoin) passes(tuple row.Tuple) bool {
	for _, sel := range j.selectors {
		if !sel.IsTrue(tuple, j.columns) {
			return false
		}
	}
	return true
}
