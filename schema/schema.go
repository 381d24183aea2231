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

// Package schema describes the feature space a model operates on: the
// ordered feature names, which feature is the prediction target, and the
// integer encodings of categorical values.
package schema

import (
	"github.com/pkg/errors"
)

// InputSchema is the ordered feature space of a model. It is immutable after
// construction.
type InputSchema struct {
	featureNames   []string
	featureIndexes map[string]int
	targetFeature  int
	classification bool
}

// NewInputSchema creates a schema from ordered feature names. Names must be
// unique and targetFeature must index into them.
func NewInputSchema(featureNames []string, targetFeature int, classification bool) (*InputSchema, error) {
	if targetFeature < 0 || targetFeature >= len(featureNames) {
		return nil, errors.Errorf("target feature %d out of range for %d features",
			targetFeature, len(featureNames))
	}
	indexes := make(map[string]int, len(featureNames))
	for i, name := range featureNames {
		if _, seen := indexes[name]; seen {
			return nil, errors.Errorf("duplicate feature name %q", name)
		}
		indexes[name] = i
	}
	names := make([]string, len(featureNames))
	copy(names, featureNames)
	return &InputSchema{
		featureNames:   names,
		featureIndexes: indexes,
		targetFeature:  targetFeature,
		classification: classification,
	}, nil
}

// NumFeatures is the number of features, target included.
func (s *InputSchema) NumFeatures() int {
	return len(s.featureNames)
}

// FeatureNames returns the ordered feature names. The returned slice must
// not be modified.
func (s *InputSchema) FeatureNames() []string {
	return s.featureNames
}

// FeatureName is the name of feature i.
func (s *InputSchema) FeatureName(i int) string {
	return s.featureNames[i]
}

// FeatureIndex resolves a feature name to its index.
func (s *InputSchema) FeatureIndex(name string) (int, bool) {
	i, ok := s.featureIndexes[name]
	return i, ok
}

// TargetFeatureIndex is the index of the prediction target.
func (s *InputSchema) TargetFeatureIndex() int {
	return s.targetFeature
}

// IsClassification reports whether the target is categorical.
func (s *InputSchema) IsClassification() bool {
	return s.classification
}
