// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package catalog

// ColumnInfo describes one column of a table's schema: its name,
// declared type, and its dense, schema-stable offset. ColumnInfo does
// not carry a table name — cyclic catalog references (Column <-> Table)
// are broken by resolving table identity through Column instead (see
// spec.md §9).
type ColumnInfo struct {
	Name   string
	DType  DataType
	Offset int
}

// Column is a ColumnInfo qualified with the owning table's name, used
// during joins where two upstream schemas may share a column name and
// only the table qualifier disambiguates them.
type Column struct {
	TableName string
	Name      string
	DType     DataType
	Offset    int
}

// ToColumn qualifies ci with tableName, producing the Column physical
// operators compose tuples against.
func (ci ColumnInfo) ToColumn(tableName string) Column {
	return Column{
		TableName: tableName,
		Name:      ci.Name,
		DType:     ci.DType,
		Offset:    ci.Offset,
	}
}
