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

// Package udon implements UDON ("Universal Document & Object Notation"), an
// indentation-sensitive markup format that blends element trees, YAML-like
// attributes, template-like directives, prose text, and syntactically typed
// attribute values.
//
// This package is the streaming event-based parser core: it consumes a
// []byte buffer and emits a flat, ordered sequence of Events without
// constructing any tree. It never copies source bytes — every slice-bearing
// Event or Value payload borrows from the input buffer, which must outlive
// the emitted events.
package udon

type EventKind int

const (
	// ElementStart: `|name[id].class1.class2<suffix>`.
	EventElementStart EventKind = iota
	// EventElementEnd closes the most recently opened Element frame.
	EventElementEnd
	// EventAttribute: `:key value`, or a flag attribute when Value is absent.
	EventAttribute
	// EventEmbeddedStart: an inline `|{...}` element group.
	EventEmbeddedStart
	// EventEmbeddedEnd closes the matching `|{...}` group.
	EventEmbeddedEnd
	// EventDirectiveStart: a block directive, `!name` or `!ns:name`.
	EventDirectiveStart
	// EventDirectiveEnd closes a block directive's indented body.
	EventDirectiveEnd
	// EventInlineDirective: `!name{content}` fully enclosed on one line.
	EventInlineDirective
	// EventInterpolation: `!{expression}`.
	EventInterpolation
	// EventText: a run of prose bytes.
	EventText
	// EventRawContent: bytes captured verbatim under a raw directive or
	// freeform fence.
	EventRawContent
	// EventComment: a `;`-introduced comment.
	EventComment
	// EventIdReference: `@[id]`.
	EventIdReference
	// EventAttributeMerge: `:[id]`.
	EventAttributeMerge
	// EventFreeformStart: an opening ``` fence.
	EventFreeformStart
	// EventFreeformEnd: the closing ``` fence.
	EventFreeformEnd
	// EventError: a recoverable diagnostic; parsing always continues after
	// emitting one.
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventElementStart:
		return "ElementStart"
	case EventElementEnd:
		return "ElementEnd"
	case EventAttribute:
		return "Attribute"
	case EventEmbeddedStart:
		return "EmbeddedStart"
	case EventEmbeddedEnd:
		return "EmbeddedEnd"
	case EventDirectiveStart:
		return "DirectiveStart"
	case EventDirectiveEnd:
		return "DirectiveEnd"
	case EventInlineDirective:
		return "InlineDirective"
	case EventInterpolation:
		return "Interpolation"
	case EventText:
		return "Text"
	case EventRawContent:
		return "RawContent"
	case EventComment:
		return "Comment"
	case EventIdReference:
		return "IdReference"
	case EventAttributeMerge:
		return "AttributeMerge"
	case EventFreeformStart:
		return "FreeformStart"
	case EventFreeformEnd:
		return "FreeformEnd"
	case EventError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Suffix identifies one of the four element-header suffix characters.
type Suffix byte

const (
	NoSuffix   Suffix = 0
	SuffixHook Suffix = '?'
	SuffixBang Suffix = '!'
	SuffixStar Suffix = '*'
	SuffixPlus Suffix = '+'
)

// Event is the tagged union emitted by the parser. Every event carries a
// Span; which other fields are meaningful depends on Kind. All slice fields
// are zero-copy views into the buffer that was parsed.
type Event struct {
	Kind EventKind
	Span Span

	// ElementStart / EmbeddedStart
	Name    []byte // nil => anonymous
	ID      *Value
	Classes [][]byte
	Suffix  Suffix

	// Attribute
	Key   []byte
	Value *Value // nil => flag attribute

	// DirectiveStart / InlineDirective
	DirectiveName []byte
	Namespace     []byte // nil => no namespace
	IsRaw         bool
	Content       []byte // InlineDirective body, Text, RawContent, Comment

	// Interpolation
	Expression []byte

	// IdReference / AttributeMerge
	Ref []byte

	// Error
	ErrorKind ErrorKind
}

// IsError reports whether this event carries a diagnostic.
func (e Event) IsError() bool { return e.Kind == EventError }

// Message returns the fixed diagnostic string for an Error event, or "" for
// any other kind.
func (e Event) Message() string {
	if e.Kind != EventError {
		return ""
	}
	return e.ErrorKind.Message()
}
