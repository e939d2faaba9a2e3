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
	"sort"
	"sync"
)

var defaultRegistry = newRegistry()

// Mapped is the type-erased view of a table descriptor held by a Registry.
// TableDescriptor implements it for every record type.
type Mapped interface {
	TableName() string
	IdentifierColumn() string
	ColumnNames() []string
}

// Registry stores descriptors and exposes them in deterministic table-name
// order.
type Registry interface {
	Register(d Mapped)
	Descriptors() []Mapped
}

type registry struct {
	entries []Mapped
	mutex   sync.RWMutex
}

func newRegistry() Registry {
	return &registry{
		entries: make([]Mapped, 0),
	}
}

func (r *registry) Register(d Mapped) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for i, existing := range r.entries {
		if existing.TableName() == d.TableName() {
			r.entries[i] = d
			return
		}
	}
	r.entries = append(r.entries, d)
}

func (r *registry) Descriptors() []Mapped {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]Mapped, len(r.entries))
	copy(result, r.entries)
	sort.Slice(result, func(i, j int) bool {
		return result[i].TableName() < result[j].TableName()
	})
	return result
}

// RegisterDescriptor adds a descriptor to the default registry. Registering
// a descriptor for an already registered table replaces the earlier entry.
func RegisterDescriptor(d Mapped) {
	defaultRegistry.Register(d)
}

// RegisteredDescriptors returns all descriptors in the default registry
// sorted by table name.
func RegisteredDescriptors() []Mapped {
	return defaultRegistry.Descriptors()
}

// RegisteredTables returns the table names of all registered descriptors.
func RegisteredTables() []string {
	descriptors := RegisteredDescriptors()
	tables := make([]string, len(descriptors))
	for i, d := range descriptors {
		tables[i] = d.TableName()
	}
	return tables
}
