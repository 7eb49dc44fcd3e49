// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package plan

import (
	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/field"
	"github.com/terakoya76/puresql-sub000/row"
)

// Projection rewrites each upstream tuple's field list according to a
// SELECT target list. Meta and Columns simply pass upstream's through
// unchanged: Projection only reshapes the tuple payload, not the
// schema a further operator downstream would read offsets against
// (there is none today — Projection is always the pipeline's last
// stage).
type Projection struct {
	upstream   Iterator
	projectors []ast.Projectable
}

// NewProjection wraps upstream, reshaping each tuple per projectors.
func NewProjection(upstream Iterator, projectors []ast.Projectable) *Projection {
	return &Projection{upstream: upstream, projectors: projectors}
}

// Meta implements Iterator.
func (p *Projection) Meta() *catalog.TableInfo { return p.upstream.Meta() }

// Columns implements Iterator.
func (p *Projection) Columns() []catalog.Column { return p.upstream.Columns() }

// Next implements Iterator.
func (p *Projection) Next() (row.Tuple, bool, error) {
	tuple, ok, err := p.upstream.Next()
	if err != nil {
		return row.Tuple{}, false, err
	}
	if !ok {
		return row.Tuple{}, false, nil
	}

	columns := p.upstream.Columns()
	var fields []field.Field
	for _, proj := range p.projectors {
		switch proj.Kind {
		case ast.ProjectTarget:
			for _, c := range columns {
				if proj.Target.TableName != nil && *proj.Target.TableName != c.TableName {
					continue
				}
				if proj.Target.Name == c.Name {
					fields = append(fields, tuple.Fields[c.Offset])
				}
			}
		case ast.ProjectLiteral:
			fields = append(fields, FieldFromLiteral(*proj.Literal))
		case ast.ProjectAll:
			// All resets whatever was accumulated so far and continues
			// with the remaining projectors, matching the upstream
			// engine's behavior of reassigning rather than appending.
			fields = append([]field.Field(nil), tuple.Fields...)
		case ast.ProjectAggregate:
			// The Aggregation operator, not Projection, computes
			// aggregate values; a Target naming the aggregate's output
			// column reaches Projection instead.
		}
	}
	return row.New(fields), true, nil
}
