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

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "ElementStart", EventElementStart.String())
	assert.Equal(t, "RawContent", EventRawContent.String())
	assert.Equal(t, "Error", EventError.String())
	assert.Equal(t, "Unknown", EventKind(999).String())
}

func TestEventIsErrorAndMessage(t *testing.T) {
	e := Event{Kind: EventError, ErrorKind: ErrInconsistentIndentation}
	assert.True(t, e.IsError())
	assert.Equal(t, "inconsistent indentation", e.Message())

	e = Event{Kind: EventText}
	assert.False(t, e.IsError())
	assert.Equal(t, "", e.Message())
}

func TestErrorKindMessageOutOfRange(t *testing.T) {
	assert.Equal(t, "unknown error", ErrorKind(999).Message())
}
