// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package udon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanBasics(t *testing.T) {
	s := NewSpan(3, 9)
	assert.Equal(t, 6, s.Len())
	assert.False(t, s.Empty())
	assert.Equal(t, "3:9", s.String())

	empty := NewSpan(4, 4)
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Len())
}

func TestSpanSlice(t *testing.T) {
	src := []byte("hello world")
	s := NewSpan(6, 11)
	assert.Equal(t, []byte("world"), s.Slice(src))
}

func TestLocation(t *testing.T) {
	src := []byte("ab\ncd\nef")
	cases := []struct {
		offset   uint32
		expected Cursor
	}{
		{0, Cursor{Line: 1, Column: 1}},
		{2, Cursor{Line: 1, Column: 3}},
		{3, Cursor{Line: 2, Column: 1}},
		{5, Cursor{Line: 2, Column: 3}},
		{6, Cursor{Line: 3, Column: 1}},
		{8, Cursor{Line: 3, Column: 3}},    // past end, clamped
		{100, Cursor{Line: 3, Column: 3}}, // well past end, clamped
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, Location(src, c.offset))
	}
}

func TestCursorString(t *testing.T) {
	assert.Equal(t, "1:1", CursorInit.String())
}
