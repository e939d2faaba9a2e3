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
	"fmt"
	"strings"

	"github.com/tomoncle/datamapper/descriptor"
)

// Statement builders are pure functions of the descriptor and recomputed on
// every call. Placeholders are always `?`; Bun's query formatter rewrites
// them per dialect when the statement is executed. Table and column names
// come from the descriptor and are trusted, not quoted.

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// selectColumns is the identifier column followed by the descriptor columns
// in binding order, the shape shared by every read statement.
func selectColumns[T any](d *descriptor.TableDescriptor[T]) string {
	return d.IdentifierColumn() + "," + strings.Join(d.ColumnNames(), ",")
}

func insertStatement[T any](d *descriptor.TableDescriptor[T]) string {
	names := d.ColumnNames()
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		d.TableName(), strings.Join(names, ","), placeholders(len(names)))
}

// insertReturningStatement is the insert variant for stores whose drivers do
// not report generated keys through LastInsertId.
func insertReturningStatement[T any](d *descriptor.TableDescriptor[T]) string {
	names := d.ColumnNames()
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s;",
		d.TableName(), strings.Join(names, ","), placeholders(len(names)), d.IdentifierColumn())
}

func selectByIdentifierStatement[T any](d *descriptor.TableDescriptor[T]) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?;",
		selectColumns(d), d.TableName(), d.IdentifierColumn())
}

func deleteStatement[T any](d *descriptor.TableDescriptor[T]) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = ?;",
		d.TableName(), d.IdentifierColumn())
}

// updateStatement places one placeholder per column in binding order; the
// identifier placeholder is the final one at position column_count+1.
func updateStatement[T any](d *descriptor.TableDescriptor[T]) string {
	assignments := strings.Join(d.ColumnNames(), " = ?, ") + " = ?"
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?;",
		d.TableName(), assignments, d.IdentifierColumn())
}

func selectAllStatement[T any](d *descriptor.TableDescriptor[T]) string {
	return fmt.Sprintf("SELECT %s FROM %s;", selectColumns(d), d.TableName())
}

func countStatement[T any](d *descriptor.TableDescriptor[T]) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s;", d.TableName())
}

func selectPageStatement[T any](d *descriptor.TableDescriptor[T], orders []string) string {
	var order string
	if len(orders) > 0 {
		order = " ORDER BY " + strings.Join(orders, ", ")
	}
	return fmt.Sprintf("SELECT %s FROM %s%s LIMIT ? OFFSET ?;",
		selectColumns(d), d.TableName(), order)
}
