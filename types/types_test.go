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

package types

import (
	"reflect"
	"testing"
)

func TestColumnKind(t *testing.T) {
	if !KindObject.IsValid() || !KindInteger.IsValid() {
		t.Error("declared kinds should be valid")
	}
	if ColumnKind(99).IsValid() {
		t.Error("undeclared kind should be invalid")
	}
	if KindObject.Name() != "object" || KindInteger.Name() != "integer" {
		t.Errorf("names = %s/%s", KindObject.Name(), KindInteger.Name())
	}
	if ColumnKind(99).Name() != IllegalName {
		t.Errorf("invalid kind name = %q", ColumnKind(99).Name())
	}
	if ColumnKind(99).Number() != IllegalValue {
		t.Errorf("invalid kind number = %d", ColumnKind(99).Number())
	}
}

func TestPageRequestDefaults(t *testing.T) {
	p := NewPageRequest(0, 0)
	if p.GetPage() != 1 {
		t.Errorf("page = %d, want 1", p.GetPage())
	}
	if p.GetPageSize() != 10 {
		t.Errorf("page size = %d, want 10", p.GetPageSize())
	}
	if p.GetOffset() != 0 {
		t.Errorf("offset = %d, want 0", p.GetOffset())
	}
}

func TestPageRequestOffset(t *testing.T) {
	p := NewPageRequest(3, 20, "id DESC")
	if p.GetOffset() != 40 {
		t.Errorf("offset = %d, want 40", p.GetOffset())
	}
	if got := p.GetOrders(); !reflect.DeepEqual(got, []string{"id DESC"}) {
		t.Errorf("orders = %v", got)
	}
}

func TestJsonObjectRoundTrip(t *testing.T) {
	src := JsonObject{"name": "mapper", "size": float64(3)}
	value, err := src.Value()
	if err != nil {
		t.Fatalf("value error: %v", err)
	}

	var dst JsonObject
	if err := dst.Scan(value); err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if !reflect.DeepEqual(dst, src) {
		t.Errorf("round trip = %v, want %v", dst, src)
	}
}

func TestJsonObjectScanNil(t *testing.T) {
	var dst JsonObject
	if err := dst.Scan(nil); err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if dst == nil || len(dst) != 0 {
		t.Errorf("scan(nil) = %v, want empty object", dst)
	}
}

func TestJsonObjectScanRejectsOtherTypes(t *testing.T) {
	var dst JsonObject
	if err := dst.Scan(42); err == nil {
		t.Error("expected an error")
	}
}
