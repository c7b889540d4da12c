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

// emitter is the single entry point all sub-scanners push events through,
// so that ordering across the line lexer, inline scanner, and indentation
// stack is trivially preserved (spec.md §4.8). In eager mode (Parse) it
// simply accumulates; in pull mode (Next) the driver still produces events
// one line at a time internally and the emitter acts as that line's queue.
type emitter struct {
	events []Event
}

func newEmitter() *emitter {
	return &emitter{}
}

func (em *emitter) emit(e Event) {
	em.events = append(em.events, e)
}

func (em *emitter) emitError(kind ErrorKind, span Span) {
	em.emit(Event{Kind: EventError, Span: span, ErrorKind: kind})
}

// drain returns and clears all buffered events, used by the pull iterator to
// hand a batch of pending events to the caller one at a time.
func (em *emitter) drain() []Event {
	out := em.events
	em.events = nil
	return out
}
