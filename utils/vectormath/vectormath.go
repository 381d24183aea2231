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

// Package vectormath holds the small dense-vector operations used by the
// similarity scorers of the serving layer.
package vectormath

import "math"

// Dot is the dot product of two equal-length vectors.
func Dot(x, y []float32) float64 {
	var total float64
	for i, xi := range x {
		total += float64(xi) * float64(y[i])
	}
	return total
}

// Norm is the Euclidean norm of a vector.
func Norm(x []float32) float64 {
	var total float64
	for _, xi := range x {
		total += float64(xi) * float64(xi)
	}
	return math.Sqrt(total)
}

// CosineSimilarity is the cosine of the angle between two vectors.
func CosineSimilarity(x, y []float32) float64 {
	return Dot(x, y) / (Norm(x) * Norm(y))
}

// CosineAverage is the mean cosine similarity between a vector and each of a
// set of reference vectors. Used to re-rank candidates against a set of
// anchor items.
func CosineAverage(references [][]float32, v []float32) float64 {
	var total float64
	for _, reference := range references {
		total += CosineSimilarity(reference, v)
	}
	return total / float64(len(references))
}
