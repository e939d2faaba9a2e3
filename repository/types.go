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

package repository

import (
	"context"

	"github.com/tomoncle/datamapper/descriptor"
	"github.com/tomoncle/datamapper/types"

	"github.com/uptrace/bun/schema"
)

// CrudRepository defines the descriptor-driven CRUD operations for a record
// type. Fetch operations return nil without error when no row matches.
type CrudRepository[T any] interface {
	// Create inserts the record and assigns the generated identifier back
	// onto it. A required column without a value fails with
	// MissingRequiredFieldError before any statement is executed.
	Create(ctx context.Context, record *T) (*T, error)

	// Exists reports whether a row with the identifier exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// FetchByID returns the record with the identifier, or nil when no row
	// matches.
	FetchByID(ctx context.Context, id int64) (*T, error)

	// Update rewrites every descriptor column of the row matching the
	// record's identifier. Fails with ErrMissingIdentifier when the record
	// has no identifier; required flags are not checked.
	Update(ctx context.Context, record *T) error

	// Remove deletes the row with the identifier and reports whether a row
	// was affected.
	Remove(ctx context.Context, id int64) (bool, error)

	// FetchAll returns every row of the table in result-set order.
	FetchAll(ctx context.Context) ([]*T, error)

	// IsValid reports whether every required column yields a value. Pure
	// predicate, no I/O.
	IsValid(record *T) bool
}

// PageQueryRepository defines counting and paged listing.
type PageQueryRepository[T any] interface {
	Count(ctx context.Context) (int, error)
	FetchPage(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)
}

// Repository combines CRUD and paging for one descriptor bound to one
// database. Implementations are stateless aside from those two references,
// so concurrent callers may share a Repository freely.
type Repository[T any] interface {
	CrudRepository[T]
	PageQueryRepository[T]
	Descriptor() *descriptor.TableDescriptor[T]
	Dialect() schema.Dialect
}
