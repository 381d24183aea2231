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

// CategorySet is a fixed-size bit vector over the encoded categories of one
// feature. The size is the feature's cardinality, known before the set is
// built. Mutated only while a forest is under construction; read-only after.
type CategorySet struct {
	bits []byte
	size int
}

// NewCategorySet creates an empty set over codes [0, size).
func NewCategorySet(size int) CategorySet {
	return CategorySet{bits: make([]byte, (size+7)/8), size: size}
}

// Size is the number of category codes the set ranges over.
func (s CategorySet) Size() int {
	return s.size
}

// Contains tests whether code i is in the set.
func (s CategorySet) Contains(i int) bool {
	return s.bits[i/8]&(1<<(uint(i)&7)) != 0
}

// Set adds code i to the set.
func (s CategorySet) Set(i int) {
	s.bits[i/8] |= 1 << (uint(i) & 7)
}

// Clear removes code i from the set.
func (s CategorySet) Clear(i int) {
	s.bits[i/8] &^= 1 << (uint(i) & 7)
}

// Fill adds every code to the set.
func (s CategorySet) Fill() {
	for i := 0; i < s.size; i++ {
		s.Set(i)
	}
}

// Count is the number of codes in the set.
func (s CategorySet) Count() int {
	count := 0
	for i := 0; i < s.size; i++ {
		if s.Contains(i) {
			count++
		}
	}
	return count
}
