// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/engine"
	"github.com/terakoya76/puresql-sub000/plan"
)

func createShohin(t *testing.T, e *engine.Engine) {
	t.Helper()
	_, err := e.Exec(ast.Statement{DDL: &ast.DDL{Create: &ast.CreateStmt{Table: &ast.CreateTableStmt{
		TableName: "shohin",
		Columns: []ast.ColumnDef{
			{Name: "shohin_id", DataType: catalog.NewIntType()},
			{Name: "shohin_name", DataType: catalog.NewCharType(10)},
			{Name: "kubun_id", DataType: catalog.NewIntType()},
			{Name: "price", DataType: catalog.NewIntType()},
		},
	}}}})
	require.NoError(t, err)
}

func insertShohin(t *testing.T, e *engine.Engine, id int64, name string, kubun, price int64) {
	t.Helper()
	_, err := e.Exec(ast.Statement{DML: &ast.DML{Insert: &ast.InsertStmt{
		TableName: "shohin",
		Values: []ast.Literal{
			ast.NewIntLiteral(id),
			ast.NewStringLiteral(name),
			ast.NewIntLiteral(kubun),
			ast.NewIntLiteral(price),
		},
	}}})
	require.NoError(t, err)
}

func TestSelectAllEmitsEveryRow(t *testing.T) {
	e := engine.New("test")
	createShohin(t, e)
	insertShohin(t, e, 1, "apple", 1, 300)
	insertShohin(t, e, 2, "orange", 1, 130)

	tuples, err := e.Exec(ast.Statement{DML: &ast.DML{Select: &ast.SelectStmt{
		Targets: []ast.Projectable{ast.AllProjectable()},
		Sources: []string{"shohin"},
	}}})
	require.NoError(t, err)
	require.Len(t, tuples, 2)
	require.Equal(t, "|1|apple|1|300|", tuples[0].String())
	require.Equal(t, "|2|orange|1|130|", tuples[1].String())
}

func TestSelectWhereFiltersRows(t *testing.T) {
	e := engine.New("test")
	createShohin(t, e)
	insertShohin(t, e, 1, "apple", 1, 300)
	insertShohin(t, e, 2, "orange", 1, 130)
	insertShohin(t, e, 3, "banana", 1, 200)

	cond := ast.LeafCondition(ast.Condition{
		Left:  ast.Target{Name: "price"},
		Op:    ast.GT,
		Right: ast.LiteralComparable(ast.NewIntLiteral(150)),
	})
	tuples, err := e.Exec(ast.Statement{DML: &ast.DML{Select: &ast.SelectStmt{
		Targets:   []ast.Projectable{ast.AllProjectable()},
		Sources:   []string{"shohin"},
		Condition: cond,
	}}})
	require.NoError(t, err)
	require.Len(t, tuples, 2)
	require.Equal(t, "|1|apple|1|300|", tuples[0].String())
	require.Equal(t, "|3|banana|1|200|", tuples[1].String())
}

func TestSelectJoinOnEquality(t *testing.T) {
	e := engine.New("test")
	createShohin(t, e)
	insertShohin(t, e, 1, "apple", 1, 300)
	insertShohin(t, e, 2, "carrot", 2, 100)

	_, err := e.Exec(ast.Statement{DDL: &ast.DDL{Create: &ast.CreateStmt{Table: &ast.CreateTableStmt{
		TableName: "kubun",
		Columns: []ast.ColumnDef{
			{Name: "kubun_id", DataType: catalog.NewIntType()},
			{Name: "kubun_name", DataType: catalog.NewCharType(10)},
		},
	}}}})
	require.NoError(t, err)
	_, err = e.Exec(ast.Statement{DML: &ast.DML{Insert: &ast.InsertStmt{
		TableName: "kubun",
		Values:    []ast.Literal{ast.NewIntLiteral(1), ast.NewStringLiteral("fruit")},
	}}})
	require.NoError(t, err)
	_, err = e.Exec(ast.Statement{DML: &ast.DML{Insert: &ast.InsertStmt{
		TableName: "kubun",
		Values:    []ast.Literal{ast.NewIntLiteral(2), ast.NewStringLiteral("veg")},
	}}})
	require.NoError(t, err)

	shohinTable := "shohin"
	kubunTable := "kubun"
	cond := ast.LeafCondition(ast.Condition{
		Left:  ast.Target{TableName: &shohinTable, Name: "kubun_id"},
		Op:    ast.Eq,
		Right: ast.TargetComparable(ast.Target{TableName: &kubunTable, Name: "kubun_id"}),
	})
	tuples, err := e.Exec(ast.Statement{DML: &ast.DML{Select: &ast.SelectStmt{
		Targets:   []ast.Projectable{ast.AllProjectable()},
		Sources:   []string{"shohin", "kubun"},
		Condition: cond,
	}}})
	require.NoError(t, err)
	require.Len(t, tuples, 2)
	require.Equal(t, "|1|apple|1|300|1|fruit|", tuples[0].String())
	require.Equal(t, "|2|carrot|2|100|2|veg|", tuples[1].String())
}

func TestSelectAggregateCountAndSum(t *testing.T) {
	e := engine.New("test")
	createShohin(t, e)
	insertShohin(t, e, 1, "apple", 1, 300)
	insertShohin(t, e, 2, "orange", 1, 130)
	insertShohin(t, e, 3, "banana", 1, 200)

	tuples, err := e.Exec(ast.Statement{DML: &ast.DML{Select: &ast.SelectStmt{
		Targets: []ast.Projectable{
			ast.AggregateProjectable(ast.Aggregate{Kind: ast.AggregateCount, Arg: ast.Aggregatable{All: true}}),
			ast.AggregateProjectable(ast.Aggregate{Kind: ast.AggregateSum, Arg: ast.Aggregatable{Target: &ast.Target{Name: "price"}}}),
		},
		Sources: []string{"shohin"},
	}}})
	require.NoError(t, err)
	require.Len(t, tuples, 1)

	final := tuples[0]
	require.Equal(t, uint64(3), final.Fields[0].U64())
	require.Equal(t, int64(630), final.Fields[1].I64())
}

func TestSelectAggregateMissingColumnErrors(t *testing.T) {
	e := engine.New("test")
	createShohin(t, e)
	insertShohin(t, e, 1, "apple", 1, 300)

	_, err := e.Exec(ast.Statement{DML: &ast.DML{Select: &ast.SelectStmt{
		Targets: []ast.Projectable{
			ast.AggregateProjectable(ast.Aggregate{Kind: ast.AggregateSum, Arg: ast.Aggregatable{Target: &ast.Target{Name: "nonexistent"}}}),
		},
		Sources: []string{"shohin"},
	}}})
	require.ErrorIs(t, err, plan.ErrColumnNotFound)
}

func TestSelectFromMissingTableErrors(t *testing.T) {
	e := engine.New("test")
	_, err := e.Exec(ast.Statement{DML: &ast.DML{Select: &ast.SelectStmt{
		Targets: []ast.Projectable{ast.AllProjectable()},
		Sources: []string{"missing"},
	}}})
	require.ErrorIs(t, err, catalog.ErrTableNotFound)
}
