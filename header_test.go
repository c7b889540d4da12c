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
	"github.com/stretchr/testify/require"
)

func TestParseHeaderAnonymous(t *testing.T) {
	em := newEmitter()
	h, next := parseHeader([]byte("\n"), 0, em)
	assert.Nil(t, h.name)
	assert.Nil(t, h.id)
	assert.Nil(t, h.classes)
	assert.Equal(t, NoSuffix, h.suffix)
	assert.Equal(t, 0, next)
	assert.Empty(t, em.events)
}

func TestParseHeaderNameOnly(t *testing.T) {
	em := newEmitter()
	h, next := parseHeader([]byte("div\n"), 0, em)
	assert.Equal(t, "div", string(h.name))
	assert.Equal(t, 3, next)
	assert.Empty(t, em.events)
}

func TestParseHeaderWithIDAndClasses(t *testing.T) {
	em := newEmitter()
	src := []byte("div[main].container.wide\n")
	h, next := parseHeader(src, 0, em)
	assert.Equal(t, "div", string(h.name))
	require.NotNil(t, h.id)
	b, isString := h.id.Bytes()
	assert.True(t, isString)
	assert.Equal(t, "main", string(b))
	require.Len(t, h.classes, 2)
	assert.Equal(t, "container", string(h.classes[0]))
	assert.Equal(t, "wide", string(h.classes[1]))
	assert.Equal(t, len(src)-1, next)
	assert.Empty(t, em.events)
}

func TestParseHeaderSuffix(t *testing.T) {
	for _, suffix := range []byte{'?', '!', '*', '+'} {
		em := newEmitter()
		src := append([]byte("div"), suffix, '\n')
		h, next := parseHeader(src, 0, em)
		assert.Equal(t, Suffix(suffix), h.suffix)
		assert.Equal(t, 4, next)
		assert.Empty(t, em.events)
	}
}

func TestParseHeaderUnknownSuffixRecovers(t *testing.T) {
	em := newEmitter()
	src := []byte("div% rest\n")
	h, next := parseHeader(src, 0, em)
	assert.Equal(t, "div", string(h.name))
	require.Len(t, em.events, 1)
	assert.Equal(t, EventError, em.events[0].Kind)
	assert.Equal(t, ErrUnknownSuffix, em.events[0].ErrorKind)
	assert.Equal(t, byte(' '), src[next])
}

func TestParseHeaderMissingClosingBracket(t *testing.T) {
	em := newEmitter()
	src := []byte("div[main\n")
	_, _ = parseHeader(src, 0, em)
	require.NotEmpty(t, em.events)
	assert.Equal(t, ErrMissingClosingBracket, em.events[0].ErrorKind)
}

func TestParseHeaderMalformedClass(t *testing.T) {
	em := newEmitter()
	src := []byte("div.1bad rest\n")
	_, _ = parseHeader(src, 0, em)
	require.NotEmpty(t, em.events)
	assert.Equal(t, ErrMalformedHeader, em.events[0].ErrorKind)
}
