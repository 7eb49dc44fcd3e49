// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package plan

import (
	"github.com/terakoya76/puresql-sub000/ast"
	"github.com/terakoya76/puresql-sub000/catalog"
	"github.com/terakoya76/puresql-sub000/row"
)

// Selection filters an upstream Iterator against a compiled conjunction
// of Selectors. A nil Selectors slice (no WHERE/ON clause) passes every
// upstream tuple through unchanged.
type Selection struct {
	upstream  Iterator
	selectors []Selector
}

// NewSelection wraps upstream, filtering by cond. cond may be nil.
func NewSelection(upstream Iterator, cond *ast.Conditions) (*Selection, error) {
	selectors, err := BuildSelectors(cond)
	if err != nil {
		return nil, err
	}
	return &Selection{upstream: upstream, selectors: selectors}, nil
}

// Meta implements Iterator.
func (s *Selection) Meta() *catalog.TableInfo { return s.upstream.Meta() }

// Columns implements Iterator.
func (s *Selection) Columns() []catalog.Column { return s.upstream.Columns() }

// Next implements Iterator. A row whose predicate fails is simply
// skipped; Selection keeps pulling from upstream until one passes or
// upstream is exhausted.
func (s *Selection) Next() (row.Tuple, bool, error) {
	for {
		tuple, ok, err := s.upstream.Next()
		if err != nil {
			return row.Tuple{}, false, err
		}
		if !ok {
			return row.Tuple{}, false, nil
		}
		if s.passes(tuple) {
			return tuple, true, nil
		}
	}
}

func (s *Selection) passes(tuple row.Tuple) bool {
	columns := s.upstream.Columns()
	for _, sel := range s.selectors {
		if !sel.IsTrue(tuple, columns) {
			return false
		}
	}
	return true
}
