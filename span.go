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

import "fmt"

// Span is a half-open byte range [Start, End) into the source buffer.
// Offsets are bounded to 4 GiB, matching the input-size bound of the format.
type Span struct {
	Start, End uint32
}

// NewSpan builds a Span from two byte offsets.
func NewSpan(start, end int) Span {
	return Span{Start: uint32(start), End: uint32(end)}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return int(s.End - s.Start) }

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool { return s.Start == s.End }

// Slice returns the bytes of src covered by the span.
func (s Span) Slice(src []byte) []byte { return src[s.Start:s.End] }

func (s Span) String() string { return fmt.Sprintf("%d:%d", s.Start, s.End) }

// Cursor is a 1-based line/column position, used only for human-facing
// diagnostics; the streaming core never compares or stores Cursor values on
// the hot path, only Span byte offsets.
type Cursor struct {
	Line, Column int
}

// CursorInit is the position at the beginning of a buffer.
var CursorInit = Cursor{Line: 1, Column: 1}

func (c Cursor) String() string { return fmt.Sprintf("%d:%d", c.Line, c.Column) }

// Location resolves a byte offset into a source buffer to a Cursor, by
// scanning for newline bytes up to offset. This is the "Location helper"
// described for diagnostic rendering (spec.md §7) — it is intentionally not
// used anywhere on the core parsing path, which tracks only byte offsets;
// callers pay the O(offset) scan only when they choose to render a
// human-readable position for an Error event.
func Location(src []byte, offset uint32) Cursor {
	if int(offset) > len(src) {
		offset = uint32(len(src))
	}
	cur := CursorInit
	for _, b := range src[:offset] {
		if b == '\n' {
			cur.Line++
			cur.Column = 1
		} else {
			cur.Column++
		}
	}
	return cur
}
