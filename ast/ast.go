// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package ast defines the statement tree the parser/lexer hands to
// package engine. Producing this tree from SQL-like text is explicitly
// out of scope (spec.md §1) — this package only fixes the shape the
// execution core consumes, per spec.md §6.
package ast

import "github.com/terakoya76/puresql-sub000/catalog"

// Statement is the root of a parsed query: either schema definition
// (DDL) or data manipulation (DML).
type Statement struct {
	DDL *DDL
	DML *DML
}

// DDL wraps the schema-definition statements. Only CREATE TABLE is
// implemented; spec.md §1 scopes DROP/ALTER out for now.
type DDL struct {
	Create *CreateStmt
}

// CreateStmt wraps the kinds of CREATE statement. Only table creation
// is implemented.
type CreateStmt struct {
	Table *CreateTableStmt
}

// CreateTableStmt describes a CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []ColumnDef
}

// ColumnDef describes one column in a CREATE TABLE statement.
type ColumnDef struct {
	Name     string
	DataType catalog.DataType
}

// DML wraps the data-manipulation statements. UPDATE and DELETE are
// named per spec.md §6 but unimplemented — spec.md §1 lists them
// among the deliberately unfinished features.
type DML struct {
	Select *SelectStmt
	Insert *InsertStmt
	Update *UpdateStmt
	Delete *DeleteStmt
}

// InsertStmt describes an INSERT statement. ColumnNames is carried for
// the parser's benefit; the engine maps Values onto the table's
// columns positionally, in declaration order.
type InsertStmt struct {
	TableName   string
	ColumnNames []string
	Values      []Literal
}

// SelectStmt describes a SELECT statement. GroupBy, OrderBy, and Limit
// are named per spec.md §6 but unimplemented — spec.md §1 lists GROUP
// BY, ORDER BY, and LIMIT among the deliberately unfinished features;
// grouping today happens implicitly through Aggregate targets in
// Targets (see package plan's Aggregation operator).
type SelectStmt struct {
	Targets   []Projectable
	Sources   []string
	Condition *Conditions
	GroupBy   *GroupBy
	OrderBy   *OrderBy
	Limit     *Limit
}

// UpdateStmt is named by spec.md §6 but unimplemented (Non-goal).
type UpdateStmt struct{}

// DeleteStmt is named by spec.md §6 but unimplemented (Non-goal).
type DeleteStmt struct{}

// GroupBy is named by spec.md §6 but unimplemented (Non-goal).
type GroupBy struct{}

// OrderBy is named by spec.md §6 but unimplemented (Non-goal).
type OrderBy struct{}

// Limit is named by spec.md §6 but unimplemented (Non-goal).
type Limit struct{}

// LiteralKind identifies which payload slot of a Literal is populated.
type LiteralKind int

// The closed set of literal kinds the parser may produce.
const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBool
)

// Literal is a constant value appearing in statement text (an INSERT
// value or the right-hand side of a WHERE comparison).
type Literal struct {
	Kind LiteralKind
	I    int64
	F    float64
	S    string
	B    bool
}

// NewIntLiteral builds an integer Literal.
func NewIntLiteral(v int64) Literal { return Literal{Kind: LiteralInt, I: v} }

// NewFloatLiteral builds a floating-point Literal.
func NewFloatLiteral(v float64) Literal { return Literal{Kind: LiteralFloat, F: v} }

// NewStringLiteral builds a string Literal.
func NewStringLiteral(v string) Literal { return Literal{Kind: LiteralString, S: v} }

// NewBoolLiteral builds a boolean Literal. Bool literals map to the
// Init field kind today (spec.md §9's documented TODO) — see
// plan.FieldFromLiteral.
func NewBoolLiteral(v bool) Literal { return Literal{Kind: LiteralBool, B: v} }

// Target identifies a column reference, optionally qualified by table
// name for post-join disambiguation.
type Target struct {
	TableName *string
	Name      string
}

// Operator is one of the six comparison operators a Condition may use.
type Operator int

// The closed set of comparison operators.
const (
	Eq Operator = iota
	Ne
	LT
	LE
	GT
	GE
)

// Comparable is the right-hand side of a Condition: either a constant
// Literal or another column Target.
type Comparable struct {
	Literal *Literal
	Target  *Target
}

// LiteralComparable builds a Comparable carrying a Literal.
func LiteralComparable(l Literal) Comparable { return Comparable{Literal: &l} }

// TargetComparable builds a Comparable carrying a Target.
func TargetComparable(t Target) Comparable { return Comparable{Target: &t} }

// Condition is a single leaf predicate: left Op right.
type Condition struct {
	Left  Target
	Op    Operator
	Right Comparable
}

// Conditions is the boolean-combination tree a WHERE/ON clause
// compiles to. Exactly one of And, Or, or Leaf is populated.
type Conditions struct {
	And  *AndConditions
	Or   *OrConditions
	Leaf *Condition
}

// AndConditions conjoins two Conditions trees.
type AndConditions struct {
	Left, Right *Conditions
}

// OrConditions disjoins two Conditions trees.
type OrConditions struct {
	Left, Right *Conditions
}

// LeafCondition wraps a single Condition as a Conditions tree.
func LeafCondition(c Condition) *Conditions { return &Conditions{Leaf: &c} }

// And builds the conjunction of two Conditions trees.
func And(left, right *Conditions) *Conditions {
	return &Conditions{And: &AndConditions{Left: left, Right: right}}
}

// Or builds the disjunction of two Conditions trees.
func Or(left, right *Conditions) *Conditions {
	return &Conditions{Or: &OrConditions{Left: left, Right: right}}
}

// ProjectableKind identifies what a SELECT target projects.
type ProjectableKind int

// The closed set of projectable kinds.
const (
	ProjectTarget ProjectableKind = iota
	ProjectLiteral
	ProjectAll
	ProjectAggregate
)

// Projectable is one entry in a SELECT's target list.
type Projectable struct {
	Kind      ProjectableKind
	Target    *Target
	Literal   *Literal
	Aggregate *Aggregate
}

// TargetProjectable builds a Projectable that projects a single
// column reference.
func TargetProjectable(t Target) Projectable {
	return Projectable{Kind: ProjectTarget, Target: &t}
}

// LiteralProjectable builds a Projectable that injects a constant.
func LiteralProjectable(l Literal) Projectable {
	return Projectable{Kind: ProjectLiteral, Literal: &l}
}

// AllProjectable builds the "*" wildcard Projectable.
func AllProjectable() Projectable {
	return Projectable{Kind: ProjectAll}
}

// AggregateProjectable builds a Projectable that names an aggregate
// function call. Package plan's Aggregation operator, not Projection,
// is what actually computes it (spec.md §4.7).
func AggregateProjectable(a Aggregate) Projectable {
	return Projectable{Kind: ProjectAggregate, Aggregate: &a}
}

// AggregateKind identifies which built-in aggregate function a call
// names.
type AggregateKind int

// The closed set of built-in aggregate functions.
const (
	AggregateCount AggregateKind = iota
	AggregateSum
	AggregateAverage
	AggregateMin
	AggregateMax
)

// Aggregatable is the argument an Aggregate call is applied to. COUNT
// accepts "*" (All); the rest take a column Target.
type Aggregatable struct {
	Target *Target
	All    bool
}

// Aggregate names an aggregate function call and its argument.
type Aggregate struct {
	Kind AggregateKind
	Arg  Aggregatable
}
