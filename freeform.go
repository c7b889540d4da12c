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

// isFreeformFence reports whether a line's content opens or closes a
// freeform fence, a run of at least three backticks (spec.md §4.7). A
// fenced body is immune to the ordinary indentation-driven dedent: once
// opened it only ever closes on a matching fence line, handled by runLine's
// raw/freeform swallow path before the general dedent loop runs.
func isFreeformFence(src []byte, contentStart, end int) bool {
	return end-contentStart >= 3 &&
		src[contentStart] == '`' && src[contentStart+1] == '`' && src[contentStart+2] == '`'
}

// dispatchFreeformFence opens a new freeform block on an opening fence
// line. The closing fence is recognized and consumed by runLine while the
// frameFreeform sits on top of the stack; this function only ever runs for
// the opener.
func dispatchFreeformFence(contentStart, end int, indent []byte, frames *frameStack, em *emitter) {
	em.emit(Event{Kind: EventFreeformStart, Span: NewSpan(contentStart, end)})
	frames.push(frame{kind: frameFreeform, indent: indent, rawStart: -1})
}
