// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package catalog

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound is returned when a referenced column is absent
// from a table's schema.
var ErrColumnNotFound = errors.New("catalog: column not found")

// TableInfo is the authoritative per-table metadata: its id, name,
// column list, index list, and the private record-id allocator that
// hands out ids to new rows. A TableInfo is created at CREATE TABLE,
// mutated only by the owning Database (inserts bump the allocator via
// MemoryTable), and destroyed along with the Database that holds it.
type TableInfo struct {
	ID           int
	Name         string
	Columns      []ColumnInfo
	Indices      []IndexInfo
	NextRecordID *Allocator
}

// NewTableInfo builds a TableInfo with a fresh allocator starting at 1,
// per spec.md §3.
func NewTableInfo(id int, name string, columns []ColumnInfo) *TableInfo {
	return &TableInfo{
		ID:           id,
		Name:         name,
		Columns:      columns,
		Indices:      nil,
		NextRecordID: NewAllocator(1),
	}
}

// ColumnInfoFromName finds the column named name, or ErrColumnNotFound
// if the schema has none by that name.
func (t *TableInfo) ColumnInfoFromName(name string) (ColumnInfo, error) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, nil
		}
	}
	return ColumnInfo{}, fmt.Errorf("catalog: table %q: %w: %q", t.Name, ErrColumnNotFound, name)
}

// FindColumnInfosByNames returns the ColumnInfos in t.Columns whose
// name matches one of names, in schema order, used by IndexInfo
// construction to resolve an index's column list.
func (t *TableInfo) FindColumnInfosByNames(names []string) []ColumnInfo {
	var out []ColumnInfo
	for _, c := range t.Columns {
		for _, name := range names {
			if c.Name == name {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// qualifiedColumns returns the fully-qualified view of t.Columns, used
// by NewMemoryTable and rebuilt on every Database.LoadTable.
func (t *TableInfo) qualifiedColumns() []Column {
	cols := make([]Column, len(t.Columns))
	for i, ci := range t.Columns {
		cols[i] = ci.ToColumn(t.Name)
	}
	return cols
}
