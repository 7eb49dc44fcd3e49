// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package plan

import (
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/row"
)

// TableScan is the leaf operator: it walks a MemoryTable's rows in
// ascending record-id order, restricted to a set of Ranges. An empty
// Ranges slice scans nothing; callers wanting every row pass a single
// Range covering the whole id space.
type TableScan struct {
	table  *catalog.MemoryTable
	meta   *catalog.TableInfo
	ranges []catalog.Range

	cursor     int
	seekHandle int
}

// NewTableScan builds a TableScan over table, bounded to ranges.
func NewTableScan(table *catalog.MemoryTable, ranges []catalog.Range) *TableScan {
	return &TableScan{
		table:  table,
		meta:   table.Meta(),
		ranges: ranges,
	}
}

// Meta implements Iterator.
func (s *TableScan) Meta() *catalog.TableInfo { return s.meta }

// Columns implements Iterator.
func (s *TableScan) Columns() []catalog.Column { return s.table.Columns() }

// nextHandle advances s.cursor/s.seekHandle to the next record id in
// range, skipping exhausted ranges and holes in the underlying table.
func (s *TableScan) nextHandle() (int, bool) {
	for {
		if s.cursor >= len(s.ranges) {
			return 0, false
		}
		r := s.ranges[s.cursor]
		if s.seekHandle < r.Low {
			s.seekHandle = r.Low
		}
		if s.seekHandle > r.High {
			s.cursor++
			continue
		}
		h, ok := s.table.Seek(s.seekHandle)
		if !ok {
			return 0, false
		}
		if h > r.High {
			s.cursor++
			continue
		}
		return h, true
	}
}

// Next implements Iterator.
func (s *TableScan) Next() (row.Tuple, bool, error) {
	h, ok := s.nextHandle()
	if !ok {
		return row.Tuple{}, false, nil
	}
	s.seekHandle = h + 1
	return s.table.GetTuple(h), true, nil
}
