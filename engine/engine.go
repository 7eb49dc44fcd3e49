// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package engine is the statement dispatcher: it owns a Database and
// routes a parsed Statement to the DDL or DML handler that builds and
// drains the physical pipeline package plan implements.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/field"
	"github.com/terakoya76/puresql-sub000/plan"
	"github.com/terakoya76/puresql-sub000/row"
)

// ErrUnsupportedStatement is returned for a statement shape the
// dispatcher does not (yet) implement, e.g. UPDATE/DELETE, or a SELECT
// naming more than two sources (nested-loop join is binary only).
var ErrUnsupportedStatement = errors.New("engine: unsupported statement")

// fullRange bounds a table scan wide enough to cover any record id a
// single-table, single-process session could have allocated.
func fullRange() []catalog.Range {
	return []catalog.Range{catalog.NewRange(0, math.MaxInt32)}
}

// Engine executes statements against one in-process Database. It is
// not safe for concurrent use, matching the Database it owns.
type Engine struct {
	db           *catalog.Database
	tableIDAlloc *catalog.Allocator
}

// New builds an Engine over a freshly created, empty Database.
func New(name string) *Engine {
	return &Engine{
		db:           catalog.NewDatabase(1, name),
		tableIDAlloc: catalog.NewAllocator(1),
	}
}

// Exec routes stmt to its DDL or DML handler. DDL statements and
// INSERT return no tuples; SELECT returns the tuples it emits, in
// emission order.
func (e *Engine) Exec(stmt ast.Statement) ([]row.Tuple, error) {
	switch {
	case stmt.DDL != nil:
		return nil, e.execDDL(*stmt.DDL)
	case stmt.DML != nil:
		return e.execDML(*stmt.DML)
	default:
		return nil, ErrUnsupportedStatement
	}
}

func (e *Engine) execDDL(ddl ast.DDL) error {
	if ddl.Create == nil || ddl.Create.Table == nil {
		return ErrUnsupportedStatement
	}
	return e.execCreateTable(*ddl.Create.Table)
}

func (e *Engine) execCreateTable(stmt ast.CreateTableStmt) error {
	columns := make([]catalog.ColumnInfo, len(stmt.Columns))
	for i, col := range stmt.Columns {
		columns[i] = catalog.ColumnInfo{Name: col.Name, DType: col.DataType, Offset: i}
	}

	ti := catalog.NewTableInfo(e.tableIDAlloc.Base(), stmt.TableName, columns)
	e.db.AddTable(ti)
	e.tableIDAlloc.Increment()
	return nil
}

func (e *Engine) execDML(dml ast.DML) ([]row.Tuple, error) {
	switch {
	case dml.Insert != nil:
		return nil, e.execInsert(*dml.Insert)
	case dml.Select != nil:
		return e.execSelect(*dml.Select)
	default:
		return nil, ErrUnsupportedStatement
	}
}

func (e *Engine) execInsert(stmt ast.InsertStmt) error {
	fields := make([]field.Field, len(stmt.Values))
	for i, lit := range stmt.Values {
		fields[i] = plan.FieldFromLiteral(lit)
	}

	mt, err := e.db.LoadTable(stmt.TableName)
	if err != nil {
		return fmt.Errorf("engine: insert into %q: %w", stmt.TableName, err)
	}
	mt.Insert(fields)
	return nil
}

// execSelect builds the scan → [join →] [selection →] [aggregation →]
// projection pipeline and drains its top-most operator to completion.
//
// A SELECT naming one source runs scan → selection → projection, using
// stmt.Condition as the WHERE predicate. A SELECT naming two sources
// runs a nested-loop join instead of selection, using stmt.Condition
// as the join's ON predicate — the AST carries a single Condition slot
// that serves double duty depending on source count, since GroupBy,
// OrderBy, and Limit (and with them, a separate ON clause) are
// unimplemented.
//
// When any target is an aggregate function call, the Aggregation
// operator's output (group-key fields followed by each aggregator's
// result, in declaration order) is already in final shape, so
// Projection is skipped entirely: Projection has no way to resolve an
// aggregate target against Aggregation's synthesized output, a gap the
// engine this was distilled from shares (see DESIGN.md).
func (e *Engine) execSelect(stmt ast.SelectStmt) ([]row.Tuple, error) {
	top, err := e.buildSources(stmt)
	if err != nil {
		return nil, err
	}

	aggregators, hasAggregate, err := collectAggregators(stmt.Targets)
	if err != nil {
		return nil, err
	}

	var final plan.Iterator
	if hasAggregate {
		final = plan.NewAggregation(top, nil, aggregators)
	} else {
		final = plan.NewProjection(top, stmt.Targets)
	}

	var tuples []row.Tuple
	for {
		tuple, ok, err := final.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tuples, nil
		}
		tuples = append(tuples, tuple)
	}
}

func (e *Engine) buildSources(stmt ast.SelectStmt) (plan.Iterator, error) {
	switch len(stmt.Sources) {
	case 1:
		mt, err := e.db.LoadTable(stmt.Sources[0])
		if err != nil {
			return nil, fmt.Errorf("engine: select from %q: %w", stmt.Sources[0], err)
		}
		scan := plan.NewTableScan(mt, fullRange())
		return plan.NewSelection(scan, stmt.Condition)
	case 2:
		outerTable, err := e.db.LoadTable(stmt.Sources[0])
		if err != nil {
			return nil, fmt.Errorf("engine: select from %q: %w", stmt.Sources[0], err)
		}
		innerTable, err := e.db.LoadTable(stmt.Sources[1])
		if err != nil {
			return nil, fmt.Errorf("engine: select from %q: %w", stmt.Sources[1], err)
		}
		outer := plan.NewTableScan(outerTable, fullRange())
		inner := plan.NewTableScan(innerTable, fullRange())
		return plan.NewNestedLoopJoin(outer, inner, stmt.Condition)
	default:
		return nil, ErrUnsupportedStatement
	}
}

func collectAggregators(targets []ast.Projectable) ([]plan.Aggregator, bool, error) {
	var aggregators []plan.Aggregator
	for _, t := range targets {
		if t.Kind != ast.ProjectAggregate {
			continue
		}
		aggr, err := plan.BuildAggregator(*t.Aggregate)
		if err != nil {
			return nil, false, err
		}
		aggregators = append(aggregators, aggr)
	}
	return aggregators, len(aggregators) > 0, nil
}
