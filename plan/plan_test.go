// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package plan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/field"
	"github.com/terakoya76/puresql-sub000/plan"
	"github.com/terakoya76/puresql-sub000/row"
)

func shohinColumns() []catalog.ColumnInfo {
	return []catalog.ColumnInfo{
		{Name: "shohin_id", DType: catalog.NewIntType(), Offset: 0},
		{Name: "shohin_name", DType: catalog.NewCharType(10), Offset: 1},
		{Name: "kubun_id", DType: catalog.NewIntType(), Offset: 2},
		{Name: "price", DType: catalog.NewIntType(), Offset: 3},
	}
}

func kubunColumns() []catalog.ColumnInfo {
	return []catalog.ColumnInfo{
		{Name: "kubun_id", DType: catalog.NewIntType(), Offset: 0},
		{Name: "kubun_name", DType: catalog.NewCharType(10), Offset: 1},
	}
}

func newShohinTable() *catalog.MemoryTable {
	ti := catalog.NewTableInfo(1, "shohin", shohinColumns())
	mt := catalog.NewMemoryTable(ti)
	mt.Insert([]field.Field{field.NewI64(1), field.NewStr("apple"), field.NewI64(1), field.NewI64(300)})
	mt.Insert([]field.Field{field.NewI64(2), field.NewStr("carrot"), field.NewI64(2), field.NewI64(100)})
	mt.Insert([]field.Field{field.NewI64(3), field.NewStr("banana"), field.NewI64(1), field.NewI64(200)})
	return mt
}

func drain(t *testing.T, it plan.Iterator) []row.Tuple {
	t.Helper()
	var out []row.Tuple
	for {
		tuple, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, tuple)
	}
}

func TestTableScanFullRange(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(0, 1000)})
	tuples := drain(t, scan)
	require.Len(t, tuples, 3)
	require.Equal(t, "apple", tuples[0].Fields[1].Str())
}

func TestTableScanBoundedRange(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(2, 2)})
	tuples := drain(t, scan)
	require.Len(t, tuples, 1)
	require.Equal(t, "carrot", tuples[0].Fields[1].Str())
}

func TestTableScanEmptyRangesScansNothing(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, nil)
	require.Empty(t, drain(t, scan))
}

func TestSelectionFiltersByPredicate(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(0, 1000)})

	cond := ast.LeafCondition(ast.Condition{
		Left:  ast.Target{Name: "kubun_id"},
		Op:    ast.Eq,
		Right: ast.LiteralComparable(ast.NewIntLiteral(1)),
	})
	sel, err := plan.NewSelection(scan, cond)
	require.NoError(t, err)

	tuples := drain(t, sel)
	require.Len(t, tuples, 2)
	require.Equal(t, "apple", tuples[0].Fields[1].Str())
	require.Equal(t, "banana", tuples[1].Fields[1].Str())
}

func TestSelectionNilConditionPassesEverything(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(0, 1000)})
	sel, err := plan.NewSelection(scan, nil)
	require.NoError(t, err)
	require.Len(t, drain(t, sel), 3)
}

func TestSelectionOrInvertsLeavesViaDeMorgan(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(0, 1000)})

	cond := ast.Or(
		ast.LeafCondition(ast.Condition{Left: ast.Target{Name: "kubun_id"}, Op: ast.Eq, Right: ast.LiteralComparable(ast.NewIntLiteral(1))}),
		ast.LeafCondition(ast.Condition{Left: ast.Target{Name: "price"}, Op: ast.Eq, Right: ast.LiteralComparable(ast.NewIntLiteral(300))}),
	)
	sel, err := plan.NewSelection(scan, cond)
	require.NoError(t, err)
	// Each OR leaf is inverted (Eq -> Ne) and the two land in one flat
	// AND, so only rows with kubun_id != 1 AND price != 300 survive.
	tuples := drain(t, sel)
	require.Len(t, tuples, 1)
	require.Equal(t, "carrot", tuples[0].Fields[1].Str())
}

func TestProjectionTargetList(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(0, 1000)})
	proj := plan.NewProjection(scan, []ast.Projectable{
		ast.TargetProjectable(ast.Target{Name: "shohin_name"}),
		ast.TargetProjectable(ast.Target{Name: "price"}),
	})
	tuples := drain(t, proj)
	require.Len(t, tuples, 3)
	require.Len(t, tuples[0].Fields, 2)
	require.Equal(t, "apple", tuples[0].Fields[0].Str())
	require.Equal(t, int64(300), tuples[0].Fields[1].I64())
}

func TestProjectionAllResetsThenContinues(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(1, 1)})
	proj := plan.NewProjection(scan, []ast.Projectable{
		ast.TargetProjectable(ast.Target{Name: "price"}),
		ast.AllProjectable(),
	})
	tuples := drain(t, proj)
	require.Len(t, tuples, 1)
	require.Len(t, tuples[0].Fields, 4)
	require.Equal(t, "apple", tuples[0].Fields[1].Str())
}

func newKubunTable() *catalog.MemoryTable {
	ti := catalog.NewTableInfo(2, "kubun", kubunColumns())
	mt := catalog.NewMemoryTable(ti)
	mt.Insert([]field.Field{field.NewI64(1), field.NewStr("fruit")})
	mt.Insert([]field.Field{field.NewI64(2), field.NewStr("veg")})
	return mt
}

func TestNestedLoopJoinZipsOuterAndInner(t *testing.T) {
	outerTable := newShohinTable()
	innerTable := newKubunTable()
	outer := plan.NewTableScan(outerTable, []catalog.Range{catalog.NewRange(0, 1000)})
	inner := plan.NewTableScan(innerTable, []catalog.Range{catalog.NewRange(0, 1000)})

	join, err := plan.NewNestedLoopJoin(outer, inner, nil)
	require.NoError(t, err)

	tuples := drain(t, join)
	// shohin has 3 rows, kubun has 2: the zip yields min(3,2) = 2 pairs.
	require.Len(t, tuples, 2)
	require.Equal(t, "apple", tuples[0].Fields[1].Str())
	require.Equal(t, "fruit", tuples[0].Fields[5].Str())
	require.Equal(t, "carrot", tuples[1].Fields[1].Str())
	require.Equal(t, "veg", tuples[1].Fields[5].Str())
}

func TestNestedLoopJoinAppliesCondition(t *testing.T) {
	outerTable := newShohinTable()
	innerTable := newKubunTable()
	outer := plan.NewTableScan(outerTable, []catalog.Range{catalog.NewRange(0, 1000)})
	inner := plan.NewTableScan(innerTable, []catalog.Range{catalog.NewRange(0, 1000)})

	tableShohin := "shohin"
	tableKubun := "kubun"
	cond := ast.LeafCondition(ast.Condition{
		Left:  ast.Target{TableName: &tableShohin, Name: "kubun_id"},
		Op:    ast.Eq,
		Right: ast.TargetComparable(ast.Target{TableName: &tableKubun, Name: "kubun_id"}),
	})
	join, err := plan.NewNestedLoopJoin(outer, inner, cond)
	require.NoError(t, err)

	tuples := drain(t, join)
	// The zipped pairs are apple/fruit and carrot/veg; both match on
	// kubun_id, and banana is never paired because kubun runs out first.
	require.Len(t, tuples, 2)
	require.Equal(t, "apple", tuples[0].Fields[1].Str())
	require.Equal(t, "fruit", tuples[0].Fields[5].Str())
	require.Equal(t, "carrot", tuples[1].Fields[1].Str())
	require.Equal(t, "veg", tuples[1].Fields[5].Str())
}

func TestAggregationCountAndSumOverImplicitGroup(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(0, 1000)})
	agg := plan.NewAggregation(scan, nil, []plan.Aggregator{plan.NewCount(), plan.NewSum(nil, "price")})

	tuples := drain(t, agg)
	require.Len(t, tuples, 1)
	last := tuples[0]
	require.Equal(t, uint64(3), last.Fields[0].U64())
	require.Equal(t, int64(600), last.Fields[1].I64())
}

func TestAggregationGroupsByKey(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(0, 1000)})
	agg := plan.NewAggregation(scan, []ast.Target{{Name: "kubun_id"}}, []plan.Aggregator{plan.NewSum(nil, "price")})

	tuples := drain(t, agg)
	require.Len(t, tuples, 2)
	byKey := map[int64]int64{}
	for _, tup := range tuples {
		byKey[tup.Fields[0].I64()] = tup.Fields[1].I64()
	}
	require.Equal(t, int64(500), byKey[1])
	require.Equal(t, int64(100), byKey[2])
}

func TestAggregationColumnNotFoundIsFatal(t *testing.T) {
	mt := newShohinTable()
	scan := plan.NewTableScan(mt, []catalog.Range{catalog.NewRange(0, 1000)})
	agg := plan.NewAggregation(scan, nil, []plan.Aggregator{plan.NewSum(nil, "nonexistent")})

	_, _, err := agg.Next()
	require.ErrorIs(t, err, plan.ErrColumnNotFound)
}

func TestMinMaxTreatInitAsAbsent(t *testing.T) {
	min := plan.NewMin(nil, "price")
	max := plan.NewMax(nil, "price")
	cols := []catalog.Column{{Name: "price", Offset: 0}}

	require.NoError(t, min.Update(row.New([]field.Field{field.NewI64(50)}), cols))
	require.NoError(t, max.Update(row.New([]field.Field{field.NewI64(50)}), cols))
	require.Equal(t, int64(50), min.Result().I64())
	require.Equal(t, int64(50), max.Result().I64())

	require.NoError(t, min.Update(row.New([]field.Field{field.NewI64(10)}), cols))
	require.NoError(t, max.Update(row.New([]field.Field{field.NewI64(10)}), cols))
	require.Equal(t, int64(10), min.Result().I64())
	require.Equal(t, int64(50), max.Result().I64())
}
