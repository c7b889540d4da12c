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

// dispatchDirectiveLine parses a block directive line, `!name` or
// `!ns:name`, optionally with a one-line inline body (`!name{content}`) or
// an indented body that follows on subsequent lines (spec.md §4.6). A
// namespace of exactly "raw" switches the frame pushed for the body to
// frameRawDirective, whose interior lines are captured verbatim by
// swallowBodyLine rather than re-dispatched as ordinary UDON constructs.
func dispatchDirectiveLine(src []byte, pos, end int, indent []byte, frames *frameStack, em *emitter) {
	start := pos
	afterBang := pos + 1

	if afterBang < end && src[afterBang] == '{' {
		next := scanBang(src, pos, end, em)
		scanInlineSpan(src, next, end, em)
		return
	}

	ident, next := consumeIdent(src, afterBang)
	if ident == nil {
		em.emitError(ErrUnexpectedCharacter, NewSpan(start, afterBang+1))
		scanInlineSpan(src, afterBang, end, em)
		return
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
			return
		}
		em.emit(Event{
			Kind:          EventInlineDirective,
			Span:          NewSpan(start, closePos+1),
			DirectiveName: name,
			Namespace:     ns,
			IsRaw:         string(ns) == "raw",
			Content:       src[contentStart:closePos],
		})
		scanInlineSpan(src, closePos+1, end, em)
		return
	}

	isRaw := string(ns) == "raw"
	kind := frameDirective
	if isRaw {
		kind = frameRawDirective
	}
	em.emit(Event{
		Kind:          EventDirectiveStart,
		Span:          NewSpan(start, next),
		DirectiveName: name,
		Namespace:     ns,
		IsRaw:         isRaw,
	})
	frames.push(frame{kind: kind, indent: indent, rawStart: -1})
	if next < end {
		scanInlineSpan(src, next, end, em)
	}
}
