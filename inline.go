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

// chainStack is the line-scoped marker stack of rightward-opened inline
// elements (`|a |b |c`, spec.md §4.1/§4.5). Unlike the block indentation
// stack, it is never carried across lines: everything left open on it is
// closed, in reverse, when the line ends.
type chainStack []EventKind

func (c *chainStack) push(k EventKind) { *c = append(*c, k) }

func (c *chainStack) closeAll(em *emitter, at int) {
	for i := len(*c) - 1; i >= 0; i-- {
		em.emit(Event{Kind: (*c)[i], Span: NewSpan(at, at)})
	}
	*c = nil
}

// lineEnd returns the index of the next newline in src at or after pos, or
// len(src) if none remains.
func lineEnd(src []byte, pos int) int {
	i := pos
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

// scanInlineLine scans the remainder of the current line as inline content
// — text, comments, interpolations, inline/embedded directives, embedded
// elements, the rightward inline chain, trailing attributes, and id
// references (spec.md §4.1, §4.5) — returning the position of the line's
// terminating newline (or len(src) at EOF). It never consumes the newline
// itself.
func scanInlineLine(src []byte, pos int, em *emitter) int {
	return scanInlineSpan(src, pos, lineEnd(src, pos), em)
}

// scanInlineSpan scans inline content bounded by end rather than by a
// physical line, used both for a single line's trailing content and for the
// interior of a brace-matched `|{...}` embed, which may itself straddle a
// newline.
func scanInlineSpan(src []byte, pos, end int, em *emitter) int {
	var chain chainStack
	for pos < end {
		switch {
		case src[pos] == ';':
			start := pos
			for pos < end && src[pos] != '\n' {
				pos++
			}
			em.emit(Event{Kind: EventComment, Span: NewSpan(start, pos), Content: src[start+1 : pos]})

		case src[pos] == '!':
			pos = scanBang(src, pos, end, em)

		case src[pos] == '|':
			pos = scanPipe(src, pos, end, em, &chain)

		case src[pos] == ':':
			pos = dispatchAttributeLine(src, pos, end, em)

		case src[pos] == '@' && pos+1 < end && src[pos+1] == '[':
			pos = scanIdRef(src, pos, end, em)

		default:
			pos = scanText(src, pos, end, em)
		}
	}
	chain.closeAll(em, pos)
	return pos
}

// scanText consumes a run of literal text up to end, up to the next
// unescaped special byte (`|`, `!`, `;`, `@[`, or a `:` that follows a space
// or tab and precedes an identifier, which starts a trailing attribute such
// as the ` :title` in `|div :title "Hello World"`). A leading `'` escapes the
// single byte that follows it, keeping both bytes in the emitted span —
// dropping the quote would break the zero-copy contiguity of the Text
// event's span, so it is kept verbatim rather than stripped.
func scanText(src []byte, pos, end int, em *emitter) int {
	start := pos
loop:
	for pos < end {
		switch src[pos] {
		case '\'':
			pos++
			if pos < end {
				pos++
			}
		case '|', '!', ';':
			break loop
		case ':':
			if pos > start && (src[pos-1] == ' ' || src[pos-1] == '\t') &&
				pos+1 < end && isIdentStartByte(src[pos+1]) {
				break loop
			}
			pos++
		case '@':
			if pos+1 < end && src[pos+1] == '[' {
				break loop
			}
			pos++
		default:
			pos++
		}
	}
	if pos > start && !isAllWhitespace(src[start:pos]) {
		em.emit(Event{Kind: EventText, Span: NewSpan(start, pos), Content: src[start:pos]})
	}
	return pos
}

// isAllWhitespace reports whether b is nothing but spaces and tabs — the
// case for a bare separator between structural tokens (e.g. the space
// between two rightward-chained elements in `|a |b`), which is consumed
// but never surfaced as a Text event.
func isAllWhitespace(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

// matchBraces finds the `}` matching the `{` at src[openPos], skipping over
// quoted-string content so a brace inside a string literal doesn't affect
// nesting depth. It is not bounded by end — a brace pair is allowed to
// straddle the line that introduced it.
func matchBraces(src []byte, openPos int) (int, bool) {
	depth := 0
	i := openPos
	for i < len(src) {
		switch src[i] {
		case '{':
			depth++
			i++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
			i++
		case '"':
			i++
			for i < len(src) {
				if src[i] == '\\' && i+1 < len(src) {
					i += 2
					continue
				}
				if src[i] == '"' {
					i++
					break
				}
				i++
			}
		default:
			i++
		}
	}
	return 0, false
}

// scanBang handles the three constructs introduced by `!`: an interpolation
// `!{expr}`, an inline directive `!name{content}` / `!ns:name{content}`, and
// — when neither follows — a bare `!` is ordinary punctuation in prose
// (spec.md §8.3's S8: a trailing `!` with nothing after it is just literal
// text, not an error), so the fallback never emits an Error for this case.
func scanBang(src []byte, pos, end int, em *emitter) int {
	start := pos
	pos++
	if pos < end && src[pos] == '{' {
		exprStart := pos + 1
		closePos, ok := matchBraces(src, pos)
		if !ok {
			em.emitError(ErrUnterminatedInline, NewSpan(start, end))
			return end
		}
		em.emit(Event{
			Kind:       EventInterpolation,
			Span:       NewSpan(start, closePos+1),
			Expression: src[exprStart:closePos],
		})
		return closePos + 1
	}

	ident, next := consumeIdent(src, pos)
	if ident == nil {
		// pos already sits just past the '!' consumed above, so the bare
		// punctuation mark is exactly src[start:pos].
		em.emit(Event{Kind: EventText, Span: NewSpan(start, pos), Content: src[start:pos]})
		return pos
	}

	var ns, name []byte
	name = ident
	if next < end && src[next] == ':' {
		if ident2, next2 := consumeIdent(src, next+1); ident2 != nil {
			ns, name = ident, ident2
			next = next2
		}
	}

	if next < end && src[next] == '{' {
		contentStart := next + 1
		closePos, ok := matchBraces(src, next)
		if !ok {
			em.emitError(ErrUnterminatedInline, NewSpan(start, end))
			return end
		}
		em.emit(Event{
			Kind:          EventInlineDirective,
			Span:          NewSpan(start, closePos+1),
			DirectiveName: name,
			Namespace:     ns,
			IsRaw:         string(ns) == "raw",
			Content:       src[contentStart:closePos],
		})
		return closePos + 1
	}

	em.emit(Event{Kind: EventText, Span: NewSpan(start, next), Content: src[start:next]})
	return next
}

// scanPipe handles `|{...}` embedded element groups and `|name[id].class`
// rightward inline-chain elements, pushing the latter onto chain so they
// close, in reverse, when the line ends (spec.md §4.1, §4.5).
func scanPipe(src []byte, pos, end int, em *emitter, chain *chainStack) int {
	start := pos
	pos++
	if pos < end && src[pos] == '{' {
		closePos, ok := matchBraces(src, pos)
		if !ok {
			em.emitError(ErrUnterminatedInline, NewSpan(start, end))
			return end
		}
		// The brace interior gets an element header parsed exactly as in
		// §4.2, terminated by `}` or whitespace-before-`}` (spec.md §4.5).
		// Header errors are held back until after EmbeddedStart so events
		// stay in span-start order.
		hem := newEmitter()
		h, headerEnd := parseHeader(src, pos+1, hem)
		em.emit(Event{
			Kind:    EventEmbeddedStart,
			Span:    NewSpan(start, headerEnd),
			Name:    h.name,
			ID:      h.id,
			Classes: h.classes,
			Suffix:  h.suffix,
		})
		for _, e := range hem.drain() {
			em.emit(e)
		}
		contentStart := headerEnd
		for contentStart < closePos && (src[contentStart] == ' ' || src[contentStart] == '\t') {
			contentStart++
		}
		scanInlineSpan(src, contentStart, closePos, em)
		em.emit(Event{Kind: EventEmbeddedEnd, Span: NewSpan(closePos, closePos+1)})
		return closePos + 1
	}

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
	chain.push(EventElementEnd)
	return next
}

// scanIdRef handles `@[id]`, a reference to a previously declared element
// id (spec.md §4.5).
func scanIdRef(src []byte, pos, end int, em *emitter) int {
	start := pos
	i := pos + 2
	refStart := i
	for i < end && src[i] != ']' {
		i++
	}
	if i < end && src[i] == ']' {
		em.emit(Event{Kind: EventIdReference, Span: NewSpan(start, i+1), Ref: src[refStart:i]})
		return i + 1
	}
	em.emitError(ErrMissingClosingBracket, NewSpan(start, i))
	return i
}
