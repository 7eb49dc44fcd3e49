// Copyright 2016-present The PureSQL Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package catalog

import (
	"errors"
	"fmt"
)

// ErrTableNotFound is returned when a Database lookup misses.
var ErrTableNotFound = errors.New("catalog: table not found")

// Database is the named registry of tables a session operates on.
// Table names are unique. Database owns each table's backing
// MemoryTable for the Database's lifetime — a TableInfo is created at
// CREATE TABLE time and lives inside its MemoryTable until the
// Database itself is dropped (spec.md §3).
type Database struct {
	id     int
	name   string
	tables map[string]*MemoryTable
}

// NewDatabase builds an empty, named Database.
func NewDatabase(id int, name string) *Database {
	return &Database{
		id:     id,
		name:   name,
		tables: make(map[string]*MemoryTable),
	}
}

// AddTable registers ti and allocates its backing MemoryTable.
func (d *Database) AddTable(ti *TableInfo) {
	d.tables[ti.Name] = NewMemoryTable(ti)
}

// TableInfoFromName returns the schema metadata for name.
func (d *Database) TableInfoFromName(name string) (*TableInfo, error) {
	mt, ok := d.tables[name]
	if !ok {
		return nil, fmt.Errorf("catalog: database %q: %w: %q", d.name, ErrTableNotFound, name)
	}
	return mt.Meta(), nil
}

// TableInfosFromNames resolves every name in names, in order, failing
// on the first miss.
func (d *Database) TableInfosFromNames(names []string) ([]*TableInfo, error) {
	infos := make([]*TableInfo, 0, len(names))
	for _, name := range names {
		info, err := d.TableInfoFromName(name)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// LoadTable produces a MemoryTable view of the table registered under
// name. Spec.md §3 notes the current design "rebuilds this view per
// load": the returned view's Columns list is always freshly derived
// from the table's schema, even though the underlying row storage and
// allocator are the same persistent instance across every load (the
// underlying storage must survive separate load calls — otherwise two
// INSERT statements against the same table could never accumulate into
// one result set).
func (d *Database) LoadTable(name string) (*MemoryTable, error) {
	mt, ok := d.tables[name]
	if !ok {
		return nil, fmt.Errorf("catalog: database %q: %w: %q", d.name, ErrTableNotFound, name)
	}
	mt.columns = mt.meta.qualifiedColumns()
	return mt, nil
}

// LoadTables loads every table in names, in order, failing on the
// first miss.
func (d *Database) LoadTables(names []string) ([]*MemoryTable, error) {
	tables := make([]*MemoryTable, 0, len(names))
	for _, name := range names {
		mt, err := d.LoadTable(name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, mt)
	}
	return tables, nil
}
