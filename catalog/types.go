// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package catalog holds the schema metadata and in-memory storage the
// execution core (package plan) runs against: DataType/ColumnInfo/
// TableInfo/IndexInfo describe a table, MemoryTable stores its rows,
// and Database is the named registry of tables a session operates on.
package catalog

import "fmt"

// DataTypeKind is the closed set of column types a schema may declare.
// It describes schema shape only — run-time values use field.Field,
// which is typed dynamically and independently of DataTypeKind.
type DataTypeKind int

// The closed set of supported column types.
const (
	TypeInt DataTypeKind = iota
	TypeBool
	TypeChar
)

// DataType is a column's declared type. N is meaningful only for
// TypeChar, where it holds the declared character length.
type DataType struct {
	Kind DataTypeKind
	N    uint8
}

// NewIntType builds an Int DataType.
func NewIntType() DataType { return DataType{Kind: TypeInt} }

// NewBoolType builds a Bool DataType.
func NewBoolType() DataType { return DataType{Kind: TypeBool} }

// NewCharType builds a Char(n) DataType.
func NewCharType(n uint8) DataType { return DataType{Kind: TypeChar, N: n} }

// String renders a DataType the way a CREATE TABLE statement would
// declare it, e.g. "char(10)".
func (d DataType) String() string {
	switch d.Kind {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeChar:
		return fmt.Sprintf("char(%d)", d.N)
	default:
		return "unknown"
	}
}
