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

// header is the parsed form of an element header: `name[id].class.class<suffix>`
// (spec.md §4.2), following a `|`.
type header struct {
	name    []byte
	id      *Value
	classes [][]byte
	suffix  Suffix
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9') || b == '-'
}

// isHeaderTerminator reports whether b ends an element header outright:
// whitespace, newline, one of `|` `:` that starts a subsequent construct, or
// `}` closing an embedded group (spec.md §4.5's header-inside-braces is
// "terminated by `}` or whitespace-before-`}`", both covered here). `!` is
// not included here even though it can also introduce a following directive
// — parseHeader's suffix case claims it first, since a `!` immediately
// glued to a header is spec.md §4.2's suffix character, not the start of a
// separate construct (spec.md §4.2).
func isHeaderTerminator(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r', '\n', '|', ':', '}':
		return true
	default:
		return false
	}
}

func consumeIdent(src []byte, pos int) (ident []byte, next int) {
	start := pos
	if pos >= len(src) || !isIdentStartByte(src[pos]) {
		return nil, pos
	}
	pos++
	for pos < len(src) && isIdentContByte(src[pos]) {
		pos++
	}
	return src[start:pos], pos
}

// resyncToWhitespace advances past bytes until a header terminator, the
// recovery point spec.md §4.2 names for a malformed header.
func resyncToWhitespace(src []byte, pos int) int {
	for pos < len(src) && !isHeaderTerminator(src[pos]) {
		pos++
	}
	return pos
}

// parseHeader parses an element header starting right after its opening
// `|`, emitting Error events through em for any malformed piece and
// resyncing at the next whitespace (spec.md §4.2).
func parseHeader(src []byte, pos int, em *emitter) (header, int) {
	var h header

	h.name, pos = consumeIdent(src, pos)

	for pos < len(src) {
		switch {
		case src[pos] == '[':
			idStart := pos
			pos++
			var v Value
			var ok bool
			// inList=true so a bare id token stops at ']' the same way a bare
			// list element does, rather than swallowing past it.
			v, pos, _, ok = scanValue(src, pos, true)
			if !ok {
				em.emitError(ErrMissingClosingBracket, NewSpan(idStart, pos))
				pos = resyncToWhitespace(src, pos)
				continue
			}
			if pos < len(src) && src[pos] == ']' {
				pos++
				h.id = &v
			} else {
				em.emitError(ErrMissingClosingBracket, NewSpan(idStart, pos))
				pos = resyncToWhitespace(src, pos)
			}

		case src[pos] == '.':
			dotStart := pos
			pos++
			var cls []byte
			cls, pos = consumeIdent(src, pos)
			if cls == nil {
				em.emitError(ErrMalformedHeader, NewSpan(dotStart, pos+1))
				pos = resyncToWhitespace(src, pos)
				return h, pos
			}
			h.classes = append(h.classes, cls)

		case src[pos] == '?' || src[pos] == '!' || src[pos] == '*' || src[pos] == '+':
			h.suffix = Suffix(src[pos])
			pos++
			return h, pos

		case isHeaderTerminator(src[pos]):
			return h, pos

		default:
			em.emitError(ErrUnknownSuffix, NewSpan(pos, pos+1))
			pos = resyncToWhitespace(src, pos)
			return h, pos
		}
	}

	return h, pos
}
