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

package schema

import (
	"github.com/pkg/errors"

	"github.com/oak-ml/decision-forests/pmml"
)

// CategoricalValueEncodings maps, per categorical feature, each declared
// category string to a dense integer code in [0, cardinality). Codes follow
// declaration order. Immutable after construction.
type CategoricalValueEncodings struct {
	valueToCode map[int]map[string]int
	codeToValue map[int][]string
}

// NewCategoricalValueEncodings creates encodings from per-feature category
// lists in code order, keyed by feature index.
func NewCategoricalValueEncodings(categories map[int][]string) *CategoricalValueEncodings {
	e := &CategoricalValueEncodings{
		valueToCode: make(map[int]map[string]int, len(categories)),
		codeToValue: make(map[int][]string, len(categories)),
	}
	for feature, values := range categories {
		e.add(feature, values)
	}
	return e
}

func (e *CategoricalValueEncodings) add(feature int, values []string) {
	encoding := make(map[string]int, len(values))
	ordered := make([]string, 0, len(values))
	for _, value := range values {
		if _, seen := encoding[value]; seen {
			continue
		}
		encoding[value] = len(ordered)
		ordered = append(ordered, value)
	}
	e.valueToCode[feature] = encoding
	e.codeToValue[feature] = ordered
}

// ValueEncodingMap is the category-to-code map of a feature. Nil if the
// feature has no categorical encoding. The returned map must not be modified.
func (e *CategoricalValueEncodings) ValueEncodingMap(feature int) map[string]int {
	return e.valueToCode[feature]
}

// EncodingValueMap is the code-to-category mapping of a feature, in code
// order. The returned slice must not be modified.
func (e *CategoricalValueEncodings) EncodingValueMap(feature int) []string {
	return e.codeToValue[feature]
}

// CategoryCount is the cardinality of a feature's category domain.
func (e *CategoricalValueEncodings) CategoryCount(feature int) int {
	return len(e.codeToValue[feature])
}

// BuildCategoricalValueEncodings derives the encodings from a document's
// data dictionary: every categorical feature of the schema gets one code per
// declared value, in declaration order.
func BuildCategoricalValueEncodings(dictionary *pmml.DataDictionary, s *InputSchema) (*CategoricalValueEncodings, error) {
	e := &CategoricalValueEncodings{
		valueToCode: make(map[int]map[string]int),
		codeToValue: make(map[int][]string),
	}
	for i, name := range s.FeatureNames() {
		field := dictionary.Field(name)
		if field == nil {
			return nil, errors.Errorf("feature %q not declared in data dictionary", name)
		}
		if len(field.Values) == 0 {
			continue
		}
		values := make([]string, 0, len(field.Values))
		for _, v := range field.Values {
			values = append(values, v.Value)
		}
		e.add(i, values)
	}
	return e, nil
}
