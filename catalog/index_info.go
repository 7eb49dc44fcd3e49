// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package catalog

import "strings"

// IndexInfo describes an index on a table: the columns it covers, and
// whether it backs the table's primary key. Secondary-index selection
// during planning is a Non-goal (spec.md §1) — IndexInfo exists here
// purely as catalog metadata, restored from the original
// implementation's meta/index_info.rs (SPEC_FULL.md §C).
type IndexInfo struct {
	ID        int
	Name      string
	TableName string
	Columns   []ColumnInfo
	IsPKIndex bool
}

// NewIndexInfo builds an IndexInfo covering columnNames on table, and
// registers it in table.Indices. The index name is auto-generated by
// joining the column names with "_".
func NewIndexInfo(table *TableInfo, columnNames []string, isPK bool) IndexInfo {
	idx := IndexInfo{
		ID:        0,
		Name:      strings.Join(columnNames, "_"),
		TableName: table.Name,
		Columns:   table.FindColumnInfosByNames(columnNames),
		IsPKIndex: isPK,
	}
	table.Indices = append(table.Indices, idx)
	return idx
}
