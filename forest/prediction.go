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

// Prediction is the payload of a terminal node. The variant set is closed:
// a Prediction is either a NumericPrediction or a CategoricalPrediction.
type Prediction interface {
	isPrediction()
}

// NumericPrediction is a regression outcome: a value and the number of
// training records that reached the leaf.
type NumericPrediction struct {
	Value float64
	Count int
}

// CategoricalPrediction is a classification outcome: one record count per
// encoded category of the target feature, in code order.
type CategoricalPrediction struct {
	Counts []int
}

func (NumericPrediction) isPrediction() {}

func (CategoricalPrediction) isPrediction() {}
