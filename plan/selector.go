// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package plan

import (
	"fmt"

	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/field"
	"github.com/terakoya76/puresql-sub000/row"
)

// Selector evaluates one leaf comparison against a tuple. BuildSelectors
// compiles a WHERE/ON clause into a flat conjunction of Selectors: a
// tuple is accepted iff every Selector in the slice reports true (see
// BuildSelectors for how an OR clause is compiled).
type Selector interface {
	// IsTrue reports whether tuple satisfies the comparison, given the
	// column list it should be read against. A column lookup failure is
	// treated as false rather than surfaced as an error: this is what
	// lets Selection skip a row whose join side didn't produce a match
	// instead of aborting the whole statement.
	IsTrue(tuple row.Tuple, columns []catalog.Column) bool
}

type selector struct {
	op          ast.Operator
	leftTable   *string
	leftColumn  string
	rightTarget *ast.Target
	rightValue  *field.Field
}

func (s *selector) IsTrue(tuple row.Tuple, columns []catalog.Column) bool {
	left, err := findField(tuple, columns, s.leftTable, s.leftColumn)
	if err != nil {
		return false
	}

	var right field.Field
	if s.rightTarget != nil {
		right, err = findField(tuple, columns, s.rightTarget.TableName, s.rightTarget.Name)
		if err != nil {
			return false
		}
	} else {
		right = *s.rightValue
	}

	switch s.op {
	case ast.Eq:
		return left.Equal(right)
	case ast.Ne:
		return !left.Equal(right)
	case ast.LT:
		return left.Less(right)
	case ast.LE:
		return left.Less(right) || left.Equal(right)
	case ast.GT:
		return left.Greater(right)
	case ast.GE:
		return left.Greater(right) || left.Equal(right)
	default:
		return false
	}
}

// findField resolves a column reference against tuple/columns.
// tableName nil matches any table, letting unqualified references
// resolve against a single-table scan; once two sources share a column
// name (post-join), only a qualified reference disambiguates.
func findField(tuple row.Tuple, columns []catalog.Column, tableName *string, columnName string) (field.Field, error) {
	for _, c := range columns {
		if c.Name != columnName {
			continue
		}
		if tableName != nil && *tableName != c.TableName {
			continue
		}
		return tuple.Fields[c.Offset], nil
	}
	return field.Field{}, fmt.Errorf("plan: %w: %q", ErrColumnNotFound, columnName)
}

// invertForOr returns the De Morgan complement of op: under an OR node,
// every leaf below it is negated and the subtree is later read as an
// AND, so building the negation directly at the leaf keeps the
// compiled selector list a flat conjunction regardless of how deeply
// nested the OR/AND tree was.
func invertForOr(op ast.Operator) ast.Operator {
	switch op {
	case ast.Eq:
		return ast.Ne
	case ast.Ne:
		return ast.Eq
	case ast.LT:
		return ast.GE
	case ast.GE:
		return ast.LT
	case ast.GT:
		return ast.LE
	case ast.LE:
		return ast.GT
	default:
		return op
	}
}

func buildLeafSelector(c ast.Condition, isOr bool) (Selector, error) {
	op := c.Op
	if isOr {
		op = invertForOr(op)
	}

	s := &selector{op: op, leftTable: c.Left.TableName, leftColumn: c.Left.Name}
	switch {
	case c.Right.Target != nil:
		s.rightTarget = c.Right.Target
	case c.Right.Literal != nil:
		v := FieldFromLiteral(*c.Right.Literal)
		s.rightValue = &v
	default:
		return nil, ErrUnexpectedRightHand
	}
	return s, nil
}

// BuildSelectors compiles cond into a flat slice of Selectors read as
// their conjunction. AND nodes simply concatenate their two subtrees'
// selector lists; OR nodes do the same after De Morgan-inverting the
// leaves directly beneath them or beneath further ORs (an AND below an
// OR compiles its own leaves uninverted). The acceptance of the list is
// not negated afterwards, so `P OR Q` over leaves selects the rows where
// neither P nor Q holds, the complement of the disjunction. This
// matches the engine it was distilled from (see DESIGN.md).
func BuildSelectors(cond *ast.Conditions) ([]Selector, error) {
	return buildSelectors(cond, false)
}

func buildSelectors(cond *ast.Conditions, isOr bool) ([]Selector, error) {
	switch {
	case cond == nil:
		return nil, nil
	case cond.And != nil:
		left, err := buildSelectors(cond.And.Left, false)
		if err != nil {
			return nil, err
		}
		right, err := buildSelectors(cond.And.Right, false)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	case cond.Or != nil:
		left, err := buildSelectors(cond.Or.Left, true)
		if err != nil {
			return nil, err
		}
		right, err := buildSelectors(cond.Or.Right, true)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	case cond.Leaf != nil:
		s, err := buildLeafSelector(*cond.Leaf, isOr)
		if err != nil {
			return nil, err
		}
		return []Selector{s}, nil
	default:
		return nil, nil
	}
}

// FieldFromLiteral converts a parsed Literal to the Field it denotes.
// Bool literals have no dedicated Field kind yet and map to Init — a
// known gap inherited from the engine this was distilled from; see
// DESIGN.md.
func FieldFromLiteral(l ast.Literal) field.Field {
	switch l.Kind {
	case ast.LiteralInt:
		return field.NewI64(l.I)
	case ast.LiteralFloat:
		return field.NewF64(l.F)
	case ast.LiteralString:
		return field.NewStr(l.S)
	default:
		return field.NewInit()
	}
}
