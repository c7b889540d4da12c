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

// ErrorKind enumerates the parser's error taxonomy (spec.md §7). Errors are
// data, not control flow: every ErrorKind maps to a single fixed message and
// is only ever observed wrapped in an Event{Kind: EventError}; the core
// never returns a Go error from the parsing path.
type ErrorKind int

const (
	_ ErrorKind = iota // zero value is reserved for "no error"

	// ErrInconsistentIndentation: indent at a line is incompatible with the
	// indentation-stack chain (neither a prefix of, nor extended by, the
	// top frame's indent).
	ErrInconsistentIndentation

	// ErrUnterminatedInline: `!{`, `!name{`, `|{`, `"`, or `[` without a
	// matching close.
	ErrUnterminatedInline

	// ErrMalformedHeader: invalid byte where a name/class identifier was
	// expected in an element header.
	ErrMalformedHeader

	// ErrMissingClosingBracket: `[id]` without the closing `]`.
	ErrMissingClosingBracket

	// ErrIntegerOverflow: numeric literal exceeds signed 64-bit range.
	ErrIntegerOverflow

	// ErrInvalidFloat: numeric literal with float syntax that fails IEEE
	// parsing.
	ErrInvalidFloat

	// ErrUnknownSuffix: character after an element header that isn't one of
	// `? ! * +`.
	ErrUnknownSuffix

	// ErrUnexpectedCharacter: catch-all for structural bytes found out of
	// context.
	ErrUnexpectedCharacter
)

var errorMessages = [...]string{
	ErrInconsistentIndentation: "inconsistent indentation",
	ErrUnterminatedInline:      "unterminated inline construct",
	ErrMalformedHeader:         "malformed element header",
	ErrMissingClosingBracket:   "missing closing bracket",
	ErrIntegerOverflow:         "integer overflow",
	ErrInvalidFloat:            "invalid float",
	ErrUnknownSuffix:           "unknown suffix",
	ErrUnexpectedCharacter:     "unexpected character",
}

// Message returns the fixed, process-lifetime diagnostic string for this
// ErrorKind. Wrappers may assume pointer stability without copying it
// (spec.md §6).
func (k ErrorKind) Message() string {
	if int(k) < 0 || int(k) >= len(errorMessages) {
		return "unknown error"
	}
	return errorMessages[k]
}
