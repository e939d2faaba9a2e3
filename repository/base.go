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
	"database/sql"

	"github.com/tomoncle/datamapper/database"
	"github.com/tomoncle/datamapper/descriptor"
	"github.com/tomoncle/datamapper/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/schema"
)

type baseRepositoryImpl[T any] struct {
	db     *bun.DB
	desc   *descriptor.TableDescriptor[T]
	logger database.Logger
}

// Option configures a repository.
type Option func(*config)

type config struct {
	logger database.Logger
}

// WithTraceLogger makes the repository debug-log every generated statement
// before execution.
func WithTraceLogger(logger database.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New returns a repository binding the descriptor to the provided Bun DB.
// Statements execute through the Bun connection, so registered query hooks
// observe them.
func New[T any](db *bun.DB, desc *descriptor.TableDescriptor[T], opts ...Option) Repository[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &baseRepositoryImpl[T]{db: db, desc: desc, logger: cfg.logger}
}

func (r *baseRepositoryImpl[T]) Descriptor() *descriptor.TableDescriptor[T] { return r.desc }

func (r *baseRepositoryImpl[T]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T]) trace(operation, query string) {
	if r.logger != nil {
		r.logger.Debug("Generated statement", "operation", operation, "query", query)
	}
}

func (r *baseRepositoryImpl[T]) Create(ctx context.Context, record *T) (*T, error) {
	columns := r.desc.Columns()
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		value := column.Extract(record)
		if value == nil {
			if column.Required {
				return nil, &MissingRequiredFieldError{Column: column.Name}
			}
			args = append(args, nil)
			continue
		}
		args = append(args, value)
	}

	// lib/pq does not support LastInsertId, so Postgres reads the generated
	// key through RETURNING instead.
	if r.db.Dialect().Name() == dialect.PG {
		query := insertReturningStatement(r.desc)
		r.trace("insert", query)
		var id int64
		if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return nil, err
		}
		r.desc.AssignIdentifier(record, id)
		return record, nil
	}

	query := insertStatement(r.desc)
	r.trace("insert", query)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	r.desc.AssignIdentifier(record, id)
	return record, nil
}

func (r *baseRepositoryImpl[T]) Exists(ctx context.Context, id int64) (bool, error) {
	query := selectByIdentifierStatement(r.desc)
	r.trace("select", query)
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	defer func() { _ = rows.Close() }()

	if rows.Next() {
		return true, nil
	}
	return false, rows.Err()
}

func (r *baseRepositoryImpl[T]) FetchByID(ctx context.Context, id int64) (*T, error) {
	query := selectByIdentifierStatement(r.desc)
	r.trace("select", query)
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, rows.Err()
	}
	record := r.desc.NewRecord()
	if err := r.scanRecord(rows, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (r *baseRepositoryImpl[T]) Update(ctx context.Context, record *T) error {
	id, ok := r.desc.ExtractIdentifier(record)
	if !ok {
		return ErrMissingIdentifier
	}

	columns := r.desc.Columns()
	args := make([]any, 0, len(columns)+1)
	for _, column := range columns {
		args = append(args, column.Extract(record))
	}
	args = append(args, id)

	query := updateStatement(r.desc)
	r.trace("update", query)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *baseRepositoryImpl[T]) Remove(ctx context.Context, id int64) (bool, error) {
	query := deleteStatement(r.desc)
	r.trace("delete", query)
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *baseRepositoryImpl[T]) FetchAll(ctx context.Context) ([]*T, error) {
	query := selectAllStatement(r.desc)
	r.trace("select", query)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return r.collectRecords(rows)
}

func (r *baseRepositoryImpl[T]) Count(ctx context.Context) (int, error) {
	query := countStatement(r.desc)
	r.trace("select", query)
	var total int
	if err := r.db.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *baseRepositoryImpl[T]) FetchPage(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error) {
	pagination := types.NewDefaultPagination[T](page.GetPage(), page.GetPageSize())
	total, err := r.Count(ctx)
	if err != nil || total == 0 {
		return pagination, err
	}

	query := selectPageStatement(r.desc, page.GetOrders())
	r.trace("select", query)
	rows, err := r.db.QueryContext(ctx, query, page.GetPageSize(), page.GetOffset())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	records, err := r.collectRecords(rows)
	if err != nil {
		return nil, err
	}
	pagination.Total = total
	pagination.Items = records
	return pagination, nil
}

func (r *baseRepositoryImpl[T]) IsValid(record *T) bool {
	for _, column := range r.desc.Columns() {
		if column.Required && column.Extract(record) == nil {
			return false
		}
	}
	return true
}

// scanRecord reads one result row shaped as selectColumns: the identifier
// first, then the descriptor columns in binding order.
func (r *baseRepositoryImpl[T]) scanRecord(rows *sql.Rows, record *T) error {
	columns := r.desc.Columns()
	var id int64
	dest := make([]any, 1+len(columns))
	dest[0] = &id
	values := make([]any, len(columns))
	for i := range values {
		dest[i+1] = &values[i]
	}

	if err := rows.Scan(dest...); err != nil {
		return err
	}

	r.desc.AssignIdentifier(record, id)
	for i, column := range columns {
		column.Assign(record, decodeColumnValue(column.Kind, values[i]))
	}
	return nil
}

func (r *baseRepositoryImpl[T]) collectRecords(rows *sql.Rows) ([]*T, error) {
	records := make([]*T, 0)
	for rows.Next() {
		record := r.desc.NewRecord()
		if err := r.scanRecord(rows, record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
