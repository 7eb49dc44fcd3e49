// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package catalog

import (
	"sort"

	"github.com/terakoya76/puresql-sub000/field"
	"github.com/terakoya76/puresql-sub000/row"
)

// MemoryTable is the runtime storage backing a TableInfo: an ordered
// map from record id to Tuple (the "tree" in spec.md §3). Keys are
// unique and strictly increasing in allocator order; every stored
// Tuple has as many fields as the schema has columns.
//
// Go has no ordered-map container in the standard library or anywhere
// in this module's dependency graph, so the tree is a plain map paired
// with a keys slice kept sorted by construction: MemoryTable.Insert
// only ever hands out ids from its table's monotonic allocator, so
// appending each new id to keys preserves ascending order without an
// explicit sort.
type MemoryTable struct {
	id      int
	name    string
	columns []Column
	meta    *TableInfo
	tree    map[int]row.Tuple
	keys    []int
}

// NewMemoryTable derives a MemoryTable view from meta. Every column in
// meta.Columns is qualified with meta.Name to build the table's
// fully-qualified Column list.
func NewMemoryTable(meta *TableInfo) *MemoryTable {
	return &MemoryTable{
		id:      meta.ID,
		name:    meta.Name,
		columns: meta.qualifiedColumns(),
		meta:    meta,
		tree:    make(map[int]row.Tuple),
	}
}

// Meta returns the TableInfo this view is derived from.
func (mt *MemoryTable) Meta() *TableInfo {
	return mt.meta
}

// Columns returns the fully-qualified column list, aligned with tuple
// field offsets.
func (mt *MemoryTable) Columns() []Column {
	return mt.columns
}

// Insert assigns the table's next record id to fields, stores them as
// a Tuple, and bumps the allocator. Spec.md §4.3 notes insertion
// "fails silently on duplicate key (cannot happen given allocator
// monotonicity)" — Go has no silent-failure equivalent to model here,
// since the allocator guarantees the key is always fresh.
func (mt *MemoryTable) Insert(fields []field.Field) int {
	rid := mt.meta.NextRecordID.Base()
	mt.tree[rid] = row.New(fields)
	mt.keys = append(mt.keys, rid)
	mt.meta.NextRecordID.Increment()
	return rid
}

// GetTuple returns the tuple stored under rid, or an empty Tuple if no
// such record exists.
func (mt *MemoryTable) GetTuple(rid int) row.Tuple {
	t, ok := mt.tree[rid]
	if !ok {
		return row.New(nil)
	}
	return t
}

// Seek returns the smallest key k >= h that exists in the table, or
// false if h exceeds the table's current size. A seek landing on a
// hole (no entry at h) recurses on h+1 so it always advances to the
// next populated key; this table's keys are dense, so the recursion
// never actually fires today, but it is kept to match the storage
// contract table-scan relies on (spec.md §4.3).
func (mt *MemoryTable) Seek(h int) (int, bool) {
	offset := len(mt.keys)
	if h > offset {
		return 0, false
	}

	idx := sort.Search(len(mt.keys), func(i int) bool { return mt.keys[i] >= h })
	if idx < len(mt.keys) && mt.keys[idx] <= offset {
		return mt.keys[idx], true
	}
	return mt.Seek(h + 1)
}

// Len reports how many rows the table currently holds.
func (mt *MemoryTable) Len() int {
	return len(mt.keys)
}
