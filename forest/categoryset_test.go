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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorySetBits(t *testing.T) {
	s := NewCategorySet(11)
	assert.Equal(t, 11, s.Size())
	assert.Equal(t, 0, s.Count())

	s.Set(4)
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(5))

	s.Set(6)
	s.Set(10)
	assert.Equal(t, 3, s.Count())

	s.Clear(6)
	assert.False(t, s.Contains(6))
	assert.Equal(t, 2, s.Count())
}

func TestCategorySetFill(t *testing.T) {
	s := NewCategorySet(9)
	s.Fill()
	assert.Equal(t, 9, s.Count())
	for i := 0; i < 9; i++ {
		assert.True(t, s.Contains(i))
	}
	s.Clear(0)
	s.Clear(8)
	assert.Equal(t, 7, s.Count())
}
