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
	"strconv"

	"github.com/tomoncle/datamapper/types"
)

// decodeColumnValue normalizes a driver value per the column's declared
// kind before it is assigned onto a record. KindInteger values arrive as
// int64 from SQLite, as []byte from MySQL, and as int64 or string from
// Postgres depending on the column type; all are coerced to int64. Every
// fetch path decodes through here, so both single-row and full-scan reads
// apply the same policy.
func decodeColumnValue(kind types.ColumnKind, value any) any {
	if value == nil || kind != types.KindInteger {
		return value
	}
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint64:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		if parsed, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return parsed
		}
	case string:
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return value
}
