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

package vectormath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	assert.Equal(t, 0.0, Dot([]float32{1, 0}, []float32{0, 1}))
	assert.Equal(t, 11.0, Dot([]float32{1, 2}, []float32{3, 4}))
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, Norm([]float32{3, 4}))
	assert.Equal(t, 0.0, Norm([]float32{0, 0}))
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{2, 2}, []float32{5, 5}), 1e-12)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 3}), 1e-12)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 1}, []float32{-2, -2}), 1e-12)
}

func TestCosineAverage(t *testing.T) {
	references := [][]float32{{1, 0}, {0, 1}}
	// Mean of cos(45°) against both axes.
	got := CosineAverage(references, []float32{1, 1})
	assert.InDelta(t, math.Sqrt2/2, got, 1e-12)

	// Identical vectors average to 1.
	assert.InDelta(t, 1.0, CosineAverage([][]float32{{1, 2, 3}}, []float32{1, 2, 3}), 1e-12)
}
