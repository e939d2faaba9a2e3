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

package datamapper

import (
	"context"
	"sync"

	"github.com/tomoncle/datamapper/database"
	"github.com/tomoncle/datamapper/descriptor"
	"github.com/tomoncle/datamapper/repository"
	"github.com/tomoncle/datamapper/types"
)

type Service[T any] interface {
	// Get returns a single record by its identifier, nil when not found.
	Get(ctx context.Context, id int64) (*T, error)

	// Exists reports whether a record with the identifier exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// All returns all records in store order.
	All(ctx context.Context) ([]*T, error)

	// Page returns a paginated list of records.
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)

	// Count returns the number of rows in the mapped table.
	Count(ctx context.Context) (int, error)

	// Save inserts a new record and assigns its generated identifier.
	Save(ctx context.Context, record *T) (*T, error)

	// Update rewrites an existing record by its identifier.
	Update(ctx context.Context, record *T) error

	// Delete removes a record by its identifier and reports whether a row
	// was deleted.
	Delete(ctx context.Context, id int64) (bool, error)

	// Validate reports whether every required column of the record has a
	// value.
	Validate(record *T) bool

	// Repository returns the underlying descriptor repository for advanced
	// use cases.
	Repository() repository.Repository[T]
}

type baseServiceImpl[T any] struct {
	desc *descriptor.TableDescriptor[T]
	repo repository.Repository[T]
	once sync.Once
}

// NewService returns a default Service implementation for the descriptor,
// backed by the global database connection. The descriptor is added to the
// default registry so mapped tables can be enumerated.
func NewService[T any](desc *descriptor.TableDescriptor[T]) Service[T] {
	descriptor.RegisterDescriptor(desc)
	return &baseServiceImpl[T]{desc: desc}
}

func (s *baseServiceImpl[T]) baseRepo() repository.Repository[T] {
	s.once.Do(func() { s.repo = repository.New(database.GetDB(), s.desc) })
	return s.repo
}

func (s *baseServiceImpl[T]) Get(ctx context.Context, id int64) (*T, error) {
	return s.baseRepo().FetchByID(ctx, id)
}

func (s *baseServiceImpl[T]) Exists(ctx context.Context, id int64) (bool, error) {
	return s.baseRepo().Exists(ctx, id)
}

func (s *baseServiceImpl[T]) All(ctx context.Context) ([]*T, error) {
	return s.baseRepo().FetchAll(ctx)
}

func (s *baseServiceImpl[T]) Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error) {
	return s.baseRepo().FetchPage(ctx, page)
}

func (s *baseServiceImpl[T]) Count(ctx context.Context) (int, error) {
	return s.baseRepo().Count(ctx)
}

func (s *baseServiceImpl[T]) Save(ctx context.Context, record *T) (*T, error) {
	return s.baseRepo().Create(ctx, record)
}

func (s *baseServiceImpl[T]) Update(ctx context.Context, record *T) error {
	return s.baseRepo().Update(ctx, record)
}

func (s *baseServiceImpl[T]) Delete(ctx context.Context, id int64) (bool, error) {
	return s.baseRepo().Remove(ctx, id)
}

func (s *baseServiceImpl[T]) Validate(record *T) bool {
	return s.baseRepo().IsValid(record)
}

func (s *baseServiceImpl[T]) Repository() repository.Repository[T] {
	return s.baseRepo()
}
