// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package row implements Tuple, the ordered vector of Fields that
// every physical operator in package plan consumes and produces.
package row

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strings"

	"github.com/terakoya76/puresql-sub000/field"
)

// Tuple is a finite ordered sequence of Fields addressed by column
// offset. Tuples are value types: Append produces a new Tuple rather
// than mutating either operand.
type Tuple struct {
	Fields []field.Field
}

// New builds a Tuple from fields, in order.
func New(fields []field.Field) Tuple {
	return Tuple{Fields: fields}
}

// Append returns a new Tuple whose fields are the receiver's fields
// followed by other's. Join results depend on this ordering: the left
// (outer) table's columns occupy offsets [0, L) and the right
// (inner) table's occupy [L, L+R).
func (t Tuple) Append(other Tuple) Tuple {
	fields := make([]field.Field, 0, len(t.Fields)+len(other.Fields))
	fields = append(fields, t.Fields...)
	fields = append(fields, other.Fields...)
	return Tuple{Fields: fields}
}

// gobField is the wire shape of a field.Field: gob can't see field's
// unexported members, so encode/decode go through this instead of
// requiring the field package to expose its internals for one codec.
type gobField struct {
	Kind field.Kind
	I    int64
	U    uint64
	F    float64
	S    string
}

func toGob(f field.Field) gobField {
	g := gobField{Kind: f.Kind()}
	switch f.Kind() {
	case field.I64:
		g.I = f.I64()
	case field.U64:
		g.U = f.U64()
	case field.F64:
		g.F = f.F64()
	case field.Str:
		g.S = f.Str()
	}
	return g
}

func fromGob(g gobField) field.Field {
	switch g.Kind {
	case field.I64:
		return field.NewI64(g.I)
	case field.U64:
		return field.NewU64(g.U)
	case field.F64:
		return field.NewF64(g.F)
	case field.Str:
		return field.NewStr(g.S)
	default:
		return field.NewInit()
	}
}

// Encode serializes t to a self-contained byte slice. The format is
// implementation-defined: there is no external consumer today (see
// spec.md §6), only the round-trip property Decode(Encode(t)) == t.
func (t Tuple) Encode() ([]byte, error) {
	gobFields := make([]gobField, len(t.Fields))
	for i, f := range t.Fields {
		gobFields[i] = toGob(f)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(gobFields); err != nil {
		return nil, fmt.Errorf("row: encode tuple: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode is the inverse of Encode.
func Decode(data []byte) (Tuple, error) {
	var gobFields []gobField
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&gobFields); err != nil {
		return Tuple{}, fmt.Errorf("row: decode tuple: %w", err)
	}

	fields := make([]field.Field, len(gobFields))
	for i, g := range gobFields {
		fields[i] = fromGob(g)
	}
	return New(fields), nil
}

// String renders t as pipe-delimited fields, e.g. "|1|apple|1|300|",
// the format the CLI contract in spec.md §6 prints per emitted row.
func (t Tuple) String() string {
	var b strings.Builder
	for _, f := range t.Fields {
		b.WriteByte('|')
		b.WriteString(f.String())
	}
	b.WriteByte('|')
	return b.String()
}
