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

// Parser drives the line lexer, indentation stack, and inline scanner over
// a single source buffer. It never copies: every slice in an emitted Event
// or Value borrows from src, so src must outlive the events produced from
// it (spec.md §6).
//
// A Parser is not safe for concurrent use; each goroutine parsing
// independent input should own its own Parser.
type Parser struct {
	src    []byte
	pos    int
	frames frameStack
	em     *emitter
	queue  []Event
	count  int
	eof    bool
}

// NewParser returns a Parser ready to scan src from the beginning.
func NewParser(src []byte) *Parser {
	return &Parser{src: src, em: newEmitter()}
}

// Reset rewinds the parser to the start of its buffer, discarding any
// in-progress frame stack or queued events, so the same Parser can be
// reused for another pass over the same source.
func (p *Parser) Reset() {
	p.pos = 0
	p.frames = nil
	p.em = newEmitter()
	p.queue = nil
	p.count = 0
	p.eof = false
}

// Parse runs the parser eagerly to completion and returns every event in
// document order, including the synthetic End events that close any frames
// still open when the buffer runs out.
func (p *Parser) Parse() []Event {
	p.Reset()
	for p.pos < len(p.src) {
		p.pos = runLine(p.src, p.pos, &p.frames, p.em)
	}
	p.closeRemaining()
	events := p.em.drain()
	p.count += len(events)
	p.eof = true
	return events
}

// closeRemaining pops every still-open frame at end of input, emitting each
// one's pending RawContent (if any) followed by its closing event, deepest
// frame first.
func (p *Parser) closeRemaining() {
	for !p.frames.empty() {
		f := p.frames.pop()
		if f.rawStart >= 0 {
			p.em.emit(Event{
				Kind:    EventRawContent,
				Span:    NewSpan(f.rawStart, f.rawEnd),
				Content: p.src[f.rawStart:f.rawEnd],
			})
		}
		p.em.emit(Event{Kind: f.endKind(), Span: NewSpan(len(p.src), len(p.src))})
	}
}

// Next pulls the next event, advancing the line-by-line scan only as far as
// needed to produce one. It reports ok=false once every event — including
// the synthetic closes at EOF — has been delivered.
func (p *Parser) Next() (Event, bool) {
	for len(p.queue) == 0 {
		if p.pos >= len(p.src) {
			if p.eof {
				return Event{}, false
			}
			p.closeRemaining()
			p.queue = p.em.drain()
			p.eof = true
			if len(p.queue) == 0 {
				return Event{}, false
			}
			break
		}
		p.pos = runLine(p.src, p.pos, &p.frames, p.em)
		p.queue = p.em.drain()
	}
	e := p.queue[0]
	p.queue = p.queue[1:]
	p.count++
	return e, true
}

// EventCount reports how many events Parse or Next has produced so far.
func (p *Parser) EventCount() int { return p.count }
