/*
 * Copyright 2023 the Decision Forests Authors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package forest

import "errors"

// Reader error kinds. Every error returned by Read wraps exactly one of
// these sentinels; match with errors.Is. All of them are permanent: a
// document that fails to read is corrupt and must not be retried.
var (
	// ErrStructure reports a document shape the reader does not support:
	// wrong model count, function kind mismatch, unsupported combination
	// method or operator, non-binary node arity.
	ErrStructure = errors.New("structural violation")

	// ErrReference reports a name that does not resolve: a feature missing
	// from the schema, a category missing from a feature's encoding, a
	// mining field out of place.
	ErrReference = errors.New("unresolved reference")

	// ErrFormat reports numeric text that does not parse, or a value outside
	// its domain.
	ErrFormat = errors.New("malformed value")
)
