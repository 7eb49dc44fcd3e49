// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package schemaload bootstraps a session's tables from a TOML schema
// file, so a CLI invocation can seed a Database without hand-typing a
// CREATE TABLE statement per table. This is a surface the execution
// core itself does not need — the dispatcher only ever sees an
// ast.Statement, however produced — but it gives the CLI something
// more realistic than an empty Database to start from.
package schemaload

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
)

// schemaFile is the top-level TOML document: a list of tables, each
// with an ordered list of columns.
type schemaFile struct {
	Tables []tomlTable `toml:"tables"`
}

type tomlTable struct {
	Name    string       `toml:"name"`
	Columns []tomlColumn `toml:"columns"`
}

type tomlColumn struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
	Size uint8  `toml:"size"`
}

// LoadFile opens path and parses it as a TOML schema.
func LoadFile(path string) ([]ast.Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schemaload: open %q: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a TOML schema from r and returns the CREATE TABLE
// statements it describes, one per [[tables]] entry, in file order.
func Load(r io.Reader) ([]ast.Statement, error) {
	var sf schemaFile
	if _, err := toml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("schemaload: decode: %w", err)
	}

	stmts := make([]ast.Statement, 0, len(sf.Tables))
	for _, table := range sf.Tables {
		columns := make([]ast.ColumnDef, 0, len(table.Columns))
		for _, col := range table.Columns {
			dtype, err := dataType(col)
			if err != nil {
				return nil, fmt.Errorf("schemaload: table %q: %w", table.Name, err)
			}
			columns = append(columns, ast.ColumnDef{Name: col.Name, DataType: dtype})
		}

		stmts = append(stmts, ast.Statement{DDL: &ast.DDL{Create: &ast.CreateStmt{Table: &ast.CreateTableStmt{
			TableName: table.Name,
			Columns:   columns,
		}}}})
	}
	return stmts, nil
}

func dataType(col tomlColumn) (catalog.DataType, error) {
	switch col.Type {
	case "int":
		return catalog.NewIntType(), nil
	case "bool":
		return catalog.NewBoolType(), nil
	case "char":
		return catalog.NewCharType(col.Size), nil
	default:
		return catalog.DataType{}, fmt.Errorf("schemaload: column %q: unknown type %q", col.Name, col.Type)
	}
}
