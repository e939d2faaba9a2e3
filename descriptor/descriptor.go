/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package descriptor

import (
	"fmt"

	"github.com/tomoncle/datamapper/types"
)

// Column binds one non-identifier table column to a field of the record
// type T. Extract returns the field value for writes, nil meaning absent.
// Assign stores a decoded result value back onto the record.
type Column[T any] struct {
	Name     string
	Required bool
	Kind     types.ColumnKind
	Extract  func(record *T) any
	Assign   func(record *T, value any)
}

// Definition is the construction input for a TableDescriptor.
type Definition[T any] struct {
	Table      string
	Identifier string
	Columns    []Column[T]

	// ExtractID returns the record identifier; ok is false when the record
	// has not been assigned one yet.
	ExtractID func(record *T) (id int64, ok bool)
	AssignID  func(record *T, id int64)
	NewRecord func() *T
}

// TableDescriptor is the immutable mapping between a record type and one
// relational table. Construct it once per record type with New and share it
// across repositories; column iteration order is fixed at construction and
// identical for statement generation and parameter binding.
type TableDescriptor[T any] struct {
	def Definition[T]
}

// New validates the definition and returns an immutable descriptor.
func New[T any](def Definition[T]) (*TableDescriptor[T], error) {
	if def.Table == "" {
		return nil, fmt.Errorf("descriptor: table name cannot be empty")
	}
	if def.Identifier == "" {
		return nil, fmt.Errorf("descriptor: identifier column name cannot be empty")
	}
	if def.ExtractID == nil || def.AssignID == nil {
		return nil, fmt.Errorf("descriptor: identifier accessors cannot be nil")
	}
	if def.NewRecord == nil {
		return nil, fmt.Errorf("descriptor: record constructor cannot be nil")
	}
	seen := make(map[string]struct{}, len(def.Columns))
	for _, c := range def.Columns {
		if c.Name == "" {
			return nil, fmt.Errorf("descriptor: column name cannot be empty")
		}
		if c.Name == def.Identifier {
			return nil, fmt.Errorf("descriptor: column %q duplicates the identifier column", c.Name)
		}
		if _, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("descriptor: duplicate column %q", c.Name)
		}
		if c.Extract == nil || c.Assign == nil {
			return nil, fmt.Errorf("descriptor: column %q accessors cannot be nil", c.Name)
		}
		if !c.Kind.IsValid() {
			return nil, fmt.Errorf("descriptor: column %q has invalid kind %d", c.Name, int(c.Kind))
		}
		seen[c.Name] = struct{}{}
	}

	d := &TableDescriptor[T]{def: def}
	d.def.Columns = make([]Column[T], len(def.Columns))
	copy(d.def.Columns, def.Columns)
	return d, nil
}

// MustNew is like New but panics on an invalid definition. Intended for
// package-level descriptor variables.
func MustNew[T any](def Definition[T]) *TableDescriptor[T] {
	d, err := New(def)
	if err != nil {
		panic(err)
	}
	return d
}

// TableName returns the mapped table name.
func (d *TableDescriptor[T]) TableName() string { return d.def.Table }

// IdentifierColumn returns the identifier column name.
func (d *TableDescriptor[T]) IdentifierColumn() string { return d.def.Identifier }

// Columns returns the non-identifier columns in binding order.
func (d *TableDescriptor[T]) Columns() []Column[T] {
	cols := make([]Column[T], len(d.def.Columns))
	copy(cols, d.def.Columns)
	return cols
}

// ColumnNames returns the non-identifier column names in binding order.
func (d *TableDescriptor[T]) ColumnNames() []string {
	names := make([]string, len(d.def.Columns))
	for i, c := range d.def.Columns {
		names[i] = c.Name
	}
	return names
}

// ExtractIdentifier returns the record identifier, ok=false when absent.
func (d *TableDescriptor[T]) ExtractIdentifier(record *T) (int64, bool) {
	return d.def.ExtractID(record)
}

// AssignIdentifier stores a generated identifier onto the record.
func (d *TableDescriptor[T]) AssignIdentifier(record *T, id int64) {
	d.def.AssignID(record, id)
}

// NewRecord returns a zero-value record.
func (d *TableDescriptor[T]) NewRecord() *T { return d.def.NewRecord() }
