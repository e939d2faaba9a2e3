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

package descriptor_test

import (
	"reflect"
	"testing"

	"github.com/tomoncle/datamapper/descriptor"
	"github.com/tomoncle/datamapper/types"
)

type widget struct {
	ID    int64
	Label string
	Size  int64
}

func widgetColumn(name string, required bool, kind types.ColumnKind) descriptor.Column[widget] {
	return descriptor.Column[widget]{
		Name:     name,
		Required: required,
		Kind:     kind,
		Extract:  func(w *widget) any { return w.Label },
		Assign:   func(w *widget, v any) {},
	}
}

func widgetDefinition(columns ...descriptor.Column[widget]) descriptor.Definition[widget] {
	return descriptor.Definition[widget]{
		Table:      "widgets",
		Identifier: "widget_id",
		Columns:    columns,
		ExtractID:  func(w *widget) (int64, bool) { return w.ID, w.ID != 0 },
		AssignID:   func(w *widget, id int64) { w.ID = id },
		NewRecord:  func() *widget { return &widget{} },
	}
}

func TestNewValidDefinition(t *testing.T) {
	d, err := descriptor.New(widgetDefinition(
		widgetColumn("label", true, types.KindObject),
		widgetColumn("size", false, types.KindInteger),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TableName() != "widgets" {
		t.Errorf("table = %q, want widgets", d.TableName())
	}
	if d.IdentifierColumn() != "widget_id" {
		t.Errorf("identifier = %q, want widget_id", d.IdentifierColumn())
	}
	want := []string{"label", "size"}
	if got := d.ColumnNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("column names = %v, want %v", got, want)
	}
}

func TestNewRejectsInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		def  descriptor.Definition[widget]
	}{
		{
			name: "empty table",
			def: func() descriptor.Definition[widget] {
				d := widgetDefinition(widgetColumn("label", false, types.KindObject))
				d.Table = ""
				return d
			}(),
		},
		{
			name: "empty identifier",
			def: func() descriptor.Definition[widget] {
				d := widgetDefinition(widgetColumn("label", false, types.KindObject))
				d.Identifier = ""
				return d
			}(),
		},
		{
			name: "missing record constructor",
			def: func() descriptor.Definition[widget] {
				d := widgetDefinition(widgetColumn("label", false, types.KindObject))
				d.NewRecord = nil
				return d
			}(),
		},
		{
			name: "missing identifier accessors",
			def: func() descriptor.Definition[widget] {
				d := widgetDefinition(widgetColumn("label", false, types.KindObject))
				d.ExtractID = nil
				return d
			}(),
		},
		{
			name: "empty column name",
			def:  widgetDefinition(widgetColumn("", false, types.KindObject)),
		},
		{
			name: "duplicate column",
			def: widgetDefinition(
				widgetColumn("label", false, types.KindObject),
				widgetColumn("label", false, types.KindObject),
			),
		},
		{
			name: "column duplicates identifier",
			def:  widgetDefinition(widgetColumn("widget_id", false, types.KindObject)),
		},
		{
			name: "missing column accessors",
			def: widgetDefinition(descriptor.Column[widget]{
				Name: "label",
				Kind: types.KindObject,
			}),
		},
		{
			name: "invalid column kind",
			def:  widgetDefinition(widgetColumn("label", false, types.ColumnKind(99))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := descriptor.New(tt.def); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestColumnOrderIsStable(t *testing.T) {
	d, err := descriptor.New(widgetDefinition(
		widgetColumn("label", false, types.KindObject),
		widgetColumn("size", false, types.KindInteger),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := d.ColumnNames()
	for i := 0; i < 10; i++ {
		if got := d.ColumnNames(); !reflect.DeepEqual(got, first) {
			t.Fatalf("column order changed: %v vs %v", got, first)
		}
	}
}

func TestIdentifierAccessors(t *testing.T) {
	d, err := descriptor.New(widgetDefinition(widgetColumn("label", false, types.KindObject)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := d.NewRecord()
	if _, ok := d.ExtractIdentifier(w); ok {
		t.Error("zero record should not report an identifier")
	}
	d.AssignIdentifier(w, 7)
	id, ok := d.ExtractIdentifier(w)
	if !ok || id != 7 {
		t.Errorf("identifier = %d,%v, want 7,true", id, ok)
	}
}
