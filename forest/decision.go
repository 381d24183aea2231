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

// Decision is the rule a DecisionNode branches on. The variant set is
// closed: a Decision is either a NumericDecision or a CategoricalDecision,
// so a scorer switching on the concrete type covers every case.
type Decision interface {
	// FeatureIndex is the index of the tested feature in the schema.
	FeatureIndex() int
	// DefaultPositive reports whether the positive branch is taken when the
	// tested feature's value is missing.
	DefaultPositive() bool

	isDecision()
}

// NumericDecision routes to the positive child iff feature >= Threshold.
// Strict "greater than" conditions are canonicalized to this form at read
// time by raising the threshold one ULP.
type NumericDecision struct {
	Feature         int
	Threshold       float64
	MissingPositive bool
}

// CategoricalDecision routes to the positive child iff the feature's encoded
// category is in ActiveCategories.
type CategoricalDecision struct {
	Feature          int
	ActiveCategories CategorySet
	MissingPositive  bool
}

// FeatureIndex of the tested feature.
func (d NumericDecision) FeatureIndex() int { return d.Feature }

// DefaultPositive reports the branch taken on a missing value.
func (d NumericDecision) DefaultPositive() bool { return d.MissingPositive }

func (NumericDecision) isDecision() {}

// FeatureIndex of the tested feature.
func (d CategoricalDecision) FeatureIndex() int { return d.Feature }

// DefaultPositive reports the branch taken on a missing value.
func (d CategoricalDecision) DefaultPositive() bool { return d.MissingPositive }

func (CategoricalDecision) isDecision() {}
