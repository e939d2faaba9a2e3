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
	"errors"
	"fmt"
)

// Contract errors are raised before any statement execution. Store errors
// from the underlying database layer propagate unwrapped and are therefore
// never of these kinds.

// ErrMissingIdentifier is returned by Update when the record's identifier
// extractor yields no value.
var ErrMissingIdentifier = errors.New("repository: record identifier is not set")

// MissingRequiredFieldError is returned by Create when a required column's
// extractor yields no value.
type MissingRequiredFieldError struct {
	Column string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("repository: required column %q has no value", e.Column)
}

// IsMissingRequiredField reports whether err is a MissingRequiredFieldError
// and returns the offending column name.
func IsMissingRequiredField(err error) (string, bool) {
	var fieldErr *MissingRequiredFieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Column, true
	}
	return "", false
}
