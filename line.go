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

// splitIndent returns the leading run of spaces and tabs at lineStart and
// the position of the first non-indent byte (spec.md §4.1). Indentation is
// compared byte-exact elsewhere via isPrefix — this function only splits it
// off, it never interprets tab width.
func splitIndent(src []byte, lineStart int) (indent []byte, contentStart int) {
	i := lineStart
	for i < len(src) && (src[i] == ' ' || src[i] == '\t') {
		i++
	}
	return src[lineStart:i], i
}

// swallowBodyLine folds one more line into the raw/freeform frame on top of
// frames, growing its contiguous [rawStart, rawEnd) span. Only the first
// captured line's own leading indent is excluded (rawStart is placed after
// it); every byte from there on — including each swallowed line's own
// trailing newline, interior newlines, and the leading indent of lines
// 2..N — stays inside the single zero-copy span, since a discontiguous
// capture isn't representable as one slice. rawEnd is the start of the line
// following this one (len(src) at EOF), so the span includes this line's
// own newline the way spec.md §8.3's S7 scenario expects.
func swallowBodyLine(src []byte, frames *frameStack, lineStart, next int) {
	top, _ := frames.top()
	_, contentStart := splitIndent(src, lineStart)
	if top.rawStart < 0 {
		top.rawStart = contentStart
	}
	top.rawEnd = next
	frames.replaceTop(top)
}

// closeBody pops the current raw/freeform frame, emitting its accumulated
// RawContent (if any content line was ever swallowed) followed by the
// frame's closing event.
func closeBody(src []byte, frames *frameStack, em *emitter, spanStart, spanEnd int) {
	f := frames.pop()
	if f.rawStart >= 0 {
		em.emit(Event{
			Kind:    EventRawContent,
			Span:    NewSpan(f.rawStart, f.rawEnd),
			Content: src[f.rawStart:f.rawEnd],
		})
	}
	em.emit(Event{Kind: f.endKind(), Span: NewSpan(spanStart, spanEnd)})
}

// runLine processes exactly one line of src starting at lineStart —
// indentation-driven frame popping, raw/freeform body swallowing, and
// dispatch of the line's own construct — and returns the start of the next
// line (len(src) at EOF).
func runLine(src []byte, lineStart int, frames *frameStack, em *emitter) int {
	end := lineEnd(src, lineStart)
	next := end
	if next < len(src) {
		next++
	}

	indent, contentStart := splitIndent(src, lineStart)
	blank := contentStart == end

	if top, ok := frames.top(); ok && (top.kind == frameRawDirective || top.kind == frameFreeform) {
		fence := top.kind == frameFreeform && isFreeformFence(src, contentStart, end)
		// A freeform frame is immune to the indentation dedent rule — every
		// non-fence line extends it regardless of its own indent (spec.md
		// §4.7). Only a RawDirective body is bounded by indentation.
		var extends bool
		switch {
		case fence:
			extends = false
		case top.kind == frameFreeform:
			extends = true
		default:
			extends = blank || (len(indent) > len(top.indent) && isPrefix(top.indent, indent))
		}
		if extends {
			swallowBodyLine(src, frames, lineStart, next)
			return next
		}
		closeBody(src, frames, em, lineStart, end)
		if fence {
			return next
		}
		// Body closed because this line dedents out of (or sits alongside)
		// the raw frame rather than extending it; fall through and
		// re-dispatch it normally below.
	}

	if blank {
		return next
	}

	for {
		top, ok := frames.top()
		if !ok {
			break
		}
		if len(indent) > len(top.indent) {
			// Properly deeper: this line nests under top as its child content.
			if isPrefix(top.indent, indent) {
				break
			}
			em.emitError(ErrInconsistentIndentation, NewSpan(lineStart, contentStart))
			break
		}
		// Same depth or shallower: top closes, whether as a dedent out of it
		// or as a sibling construct starting at the same column.
		if !isPrefix(indent, top.indent) {
			em.emitError(ErrInconsistentIndentation, NewSpan(lineStart, contentStart))
			break
		}
		f := frames.pop()
		em.emit(Event{Kind: f.endKind(), Span: NewSpan(lineStart, lineStart)})
	}

	dispatchLine(src, lineStart, contentStart, end, indent, frames, em)
	return next
}

// dispatchLine classifies a non-blank line by its first content byte and
// hands it to the matching construct parser (spec.md §4.1's line
// classification table).
func dispatchLine(src []byte, lineStart, contentStart, end int, indent []byte, frames *frameStack, em *emitter) {
	switch {
	case src[contentStart] == ';':
		em.emit(Event{Kind: EventComment, Span: NewSpan(contentStart, end), Content: src[contentStart+1 : end]})

	case src[contentStart] == '|':
		dispatchElementLine(src, contentStart, end, indent, frames, em)

	case src[contentStart] == ':':
		dispatchAttributeLine(src, contentStart, end, em)

	case src[contentStart] == '!':
		dispatchDirectiveLine(src, contentStart, end, indent, frames, em)

	case isFreeformFence(src, contentStart, end):
		dispatchFreeformFence(contentStart, end, indent, frames, em)

	default:
		scanInlineSpan(src, contentStart, end, em)
	}
}

func dispatchElementLine(src []byte, pos, end int, indent []byte, frames *frameStack, em *emitter) {
	start := pos
	pos++ // consume '|'
	// Header errors are held back until after ElementStart so events stay in
	// span-start order.
	hem := newEmitter()
	h, next := parseHeader(src, pos, hem)
	em.emit(Event{
		Kind:    EventElementStart,
		Span:    NewSpan(start, next),
		Name:    h.name,
		ID:      h.id,
		Classes: h.classes,
		Suffix:  h.suffix,
	})
	for _, e := range hem.drain() {
		em.emit(e)
	}
	frames.push(frame{kind: frameElement, indent: indent, rawStart: -1})
	scanInlineSpan(src, next, end, em)
}

// dispatchAttributeLine parses one `:[id]` merge or `:key value`/`:key` flag
// attribute, bounded by end, and returns the position just past it. It is
// shared by whole-line attribute dispatch and by the inline scanner, since
// an attribute can also trail an element header on the same line (spec.md
// §8.3's S5: `|div :title "Hello World"`).
func dispatchAttributeLine(src []byte, pos, end int, em *emitter) int {
	start := pos
	pos++ // consume ':'

	if pos < end && src[pos] == '[' {
		i := pos + 1
		refStart := i
		for i < end && src[i] != ']' {
			i++
		}
		if i < end && src[i] == ']' {
			em.emit(Event{Kind: EventAttributeMerge, Span: NewSpan(start, i+1), Ref: src[refStart:i]})
			return i + 1
		}
		em.emitError(ErrMissingClosingBracket, NewSpan(start, i))
		return i
	}

	key, next := consumeIdent(src, pos)
	if key == nil {
		em.emitError(ErrUnexpectedCharacter, NewSpan(start, pos+1))
		return pos + 1
	}
	wsEnd := next
	for wsEnd < end && (src[wsEnd] == ' ' || src[wsEnd] == '\t') {
		wsEnd++
	}
	if wsEnd >= end || src[wsEnd] == ';' {
		em.emit(Event{Kind: EventAttribute, Span: NewSpan(start, next), Key: key})
		return next
	}

	v, vend, errKind, ok := scanValue(src, wsEnd, false)
	if !ok {
		em.emit(Event{Kind: EventAttribute, Span: NewSpan(start, next), Key: key})
		return next
	}
	if errKind != 0 {
		em.emitError(errKind, v.Span)
	}
	em.emit(Event{Kind: EventAttribute, Span: NewSpan(start, vend), Key: key, Value: &v})
	return vend
}
