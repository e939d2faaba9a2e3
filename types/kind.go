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

// Common illegal/default values used by enums.
const (
	IllegalValue = -1
	IllegalName  = "unknown"
)

// BaseEnum represents a basic enum contract used by domain types.
type BaseEnum interface {
	IsValid() bool
	Number() int
	Name() string
}

// ColumnKind declares how a column value read from a result set is decoded
// before it is handed to the column's assignment function. KindObject keeps
// the driver value untouched; KindInteger coerces to int64.
type ColumnKind int

const (
	KindObject ColumnKind = iota
	KindInteger
)

var _ BaseEnum = KindObject

// IsValid reports whether the kind is one of the declared values.
func (k ColumnKind) IsValid() bool {
	return k == KindObject || k == KindInteger
}

// Number returns the numeric value of the kind.
func (k ColumnKind) Number() int {
	if !k.IsValid() {
		return IllegalValue
	}
	return int(k)
}

// Name returns the kind name.
func (k ColumnKind) Name() string {
	switch k {
	case KindObject:
		return "object"
	case KindInteger:
		return "integer"
	default:
		return IllegalName
	}
}

func (k ColumnKind) String() string { return k.Name() }
