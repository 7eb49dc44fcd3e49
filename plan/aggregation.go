// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package plan

import (
	"strconv"
	"strings"

	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/field"
	"github.com/terakoya76/puresql-sub000/row"
)

// Aggregation groups upstream tuples by a (possibly empty) list of key
// Targets and folds each group through its own copy of the Aggregator
// list. An empty key list produces a single implicit group spanning
// every upstream row.
//
// Upstream is fully drained on the first call to Next, folding every
// row into its group's Aggregators; only then does Aggregation start
// emitting, one tuple per group in group-creation order, terminating
// once every group has been emitted. This is the finalizing form
// spec.md §9 prefers over the distilled engine's per-row partial
// snapshots: a caller draining Aggregation to exhaustion sees exactly
// one tuple per group, never a partial one.
type Aggregation struct {
	upstream  Iterator
	groupKeys []ast.Target
	templates []Aggregator

	groups    map[string][]Aggregator
	keyFields map[string][]field.Field
	order     []string

	pending []row.Tuple
	done    bool
}

// NewAggregation builds an Aggregation over upstream, grouping by
// groupKeys and folding each group through a fresh clone of templates.
func NewAggregation(upstream Iterator, groupKeys []ast.Target, templates []Aggregator) *Aggregation {
	return &Aggregation{
		upstream:  upstream,
		groupKeys: groupKeys,
		templates: templates,
		groups:    make(map[string][]Aggregator),
		keyFields: make(map[string][]field.Field),
	}
}

// Meta implements Iterator.
func (a *Aggregation) Meta() *catalog.TableInfo { return a.upstream.Meta() }

// Columns implements Iterator.
func (a *Aggregation) Columns() []catalog.Column { return a.upstream.Columns() }

// Next implements Iterator. A column-not-found error raised while
// folding a row into its group is fatal to the statement: unlike
// Selection, there is no well-defined way to "skip" an aggregate
// update, so the error is returned rather than swallowed. The first
// call drains upstream entirely before any tuple is emitted; every
// call after that just pops the next group off the final snapshot.
func (a *Aggregation) Next() (row.Tuple, bool, error) {
	if !a.done {
		if err := a.consume(); err != nil {
			return row.Tuple{}, false, err
		}
		a.done = true
		a.pending = a.snapshot()
	}

	if len(a.pending) == 0 {
		return row.Tuple{}, false, nil
	}
	t := a.pending[0]
	a.pending = a.pending[1:]
	return t, true, nil
}

// consume folds every upstream tuple into its group's Aggregators,
// returning once upstream is exhausted.
func (a *Aggregation) consume() error {
	for {
		tuple, ok, err := a.upstream.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		columns := a.upstream.Columns()
		keyFields := a.extractKey(tuple, columns)
		key := encodeKey(keyFields)

		aggrs, ok := a.groups[key]
		if !ok {
			aggrs = make([]Aggregator, len(a.templates))
			for i, tmpl := range a.templates {
				aggrs[i] = tmpl.Clone()
			}
			a.groups[key] = aggrs
			a.keyFields[key] = keyFields
			a.order = append(a.order, key)
		}

		for _, aggr := range aggrs {
			if err := aggr.Update(tuple, columns); err != nil {
				return err
			}
		}
	}
}

// extractKey resolves every group-key Target against columns, in
// declaration order. A Target with no matching column contributes
// nothing; a Target matching more than one column (table-unqualified
// after a join) contributes each match, in column order.
func (a *Aggregation) extractKey(tuple row.Tuple, columns []catalog.Column) []field.Field {
	var key []field.Field
	for _, target := range a.groupKeys {
		for _, c := range columns {
			if target.TableName != nil && *target.TableName != c.TableName {
				continue
			}
			if target.Name == c.Name {
				key = append(key, tuple.Fields[c.Offset])
			}
		}
	}
	return key
}

func (a *Aggregation) snapshot() []row.Tuple {
	tuples := make([]row.Tuple, 0, len(a.order))
	for _, key := range a.order {
		fields := append([]field.Field(nil), a.keyFields[key]...)
		for _, aggr := range a.groups[key] {
			fields = append(fields, aggr.Result())
		}
		tuples = append(tuples, row.New(fields))
	}
	return tuples
}

// encodeKey serializes a group key to a comparable map key. Field is
// itself a comparable struct, but Go map keys can't be slices, so the
// key fields are rendered to a delimited string instead; kind is
// folded in alongside the value so Fields of different kinds but equal
// string rendering (e.g. the I64 10 and the Str "10") never collide.
func encodeKey(fields []field.Field) string {
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(strconv.Itoa(int(f.Kind())))
		b.WriteByte(':')
		b.WriteString(f.String())
		b.WriteByte('\x1f')
	}
	return b.String()
}
