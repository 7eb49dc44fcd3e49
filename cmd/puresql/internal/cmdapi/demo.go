// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package cmdapi

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/engine"
	"github.com/terakoya76/puresql-sub000/internal/schemaload"
)

var demoFlags struct {
	schemaPath string
}

// demoCmd seeds a fresh Database from a TOML schema, inserts two rows
// into its first table, and runs a SELECT * against it — exercising
// the dispatcher end to end the way the CLI contract describes,
// without a SQL text parser: producing a parsed Statement from text is
// an external collaborator this module doesn't implement (see
// DESIGN.md), so this command builds Statements directly instead of
// parsing them.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted CREATE/INSERT/SELECT against a schema file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		stmts, err := schemaload.LoadFile(demoFlags.schemaPath)
		if err != nil {
			return err
		}
		if len(stmts) == 0 {
			return fmt.Errorf("cmdapi: schema %q declares no tables", demoFlags.schemaPath)
		}

		e := engine.New("demo")
		for _, stmt := range stmts {
			if _, err := e.Exec(stmt); err != nil {
				return err
			}
		}

		table := stmts[0].DDL.Create.Table
		insert := func(values ...ast.Literal) error {
			_, err := e.Exec(ast.Statement{DML: &ast.DML{Insert: &ast.InsertStmt{
				TableName: table.TableName,
				Values:    values,
			}}})
			return err
		}

		sample := sampleRow(table, 1)
		if err := insert(sample...); err != nil {
			return err
		}
		sample = sampleRow(table, 2)
		if err := insert(sample...); err != nil {
			return err
		}

		tuples, err := e.Exec(ast.Statement{DML: &ast.DML{Select: &ast.SelectStmt{
			Targets: []ast.Projectable{ast.AllProjectable()},
			Sources: []string{table.TableName},
		}}})
		if err != nil {
			return err
		}

		for _, tuple := range tuples {
			cmd.Println(tuple.String())
		}
		cmd.Println("Scaned")
		return nil
	},
}

// sampleRow fabricates a placeholder literal per column so demo can
// insert rows without a real value source: an integer column gets n,
// a char column gets a short synthetic string, a bool column gets
// false.
func sampleRow(table *ast.CreateTableStmt, n int64) []ast.Literal {
	values := make([]ast.Literal, len(table.Columns))
	for i, col := range table.Columns {
		switch col.DataType.Kind {
		case catalog.TypeInt:
			values[i] = ast.NewIntLiteral(n)
		case catalog.TypeBool:
			values[i] = ast.NewBoolLiteral(false)
		default:
			values[i] = ast.NewStringLiteral(fmt.Sprintf("row%d", n))
		}
	}
	return values
}

func init() {
	demoCmd.Flags().StringVar(&demoFlags.schemaPath, "schema", "", "path to a TOML schema file")
	_ = demoCmd.MarkFlagRequired("schema")
}
