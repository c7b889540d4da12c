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

import (
	"testing"
)

func seedCorpus(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("\n\n  \n"))
	f.Add([]byte("; a comment\n"))
	f.Add([]byte("|div\n"))
	f.Add([]byte("|div[main].container.wide\n"))
	f.Add([]byte("|a |b |c\n"))
	f.Add([]byte(`|div :title "Hello World"` + "\n"))
	f.Add([]byte("|a\n  |b\n    |c\n|d\n"))
	f.Add([]byte("!raw:sql\n  SELECT * FROM users\n"))
	f.Add([]byte("Hello !{user.name}!\n"))
	f.Add([]byte("```\nfenced\n```\n"))
	f.Add([]byte("|div[unterminated\n"))
	f.Add([]byte("|div\n \t|bad\n"))
	f.Add([]byte("!{expr}"))
	f.Add([]byte(":[merge]\n"))
	f.Add([]byte("@[ref]\n"))
	f.Add([]byte("[1 2 3r 4i true nil]"))
}

// FuzzParserNeverPanics covers spec.md §8.4's "random ASCII input: never
// panics, always emits a finite event sequence whose total span coverage is
// a subset of [0, |B|)".
func FuzzParserNeverPanics(f *testing.F) {
	seedCorpus(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("parser panicked on %q: %v", data, r)
			}
		}()

		events := NewParser(data).Parse()

		for _, e := range events {
			if e.Span.Start > e.Span.End {
				t.Fatalf("span start %d > end %d", e.Span.Start, e.Span.End)
			}
			if int(e.Span.End) > len(data) {
				t.Fatalf("span end %d exceeds input length %d", e.Span.End, len(data))
			}
		}

		assertBalancedPlain(t, events, EventElementStart, EventElementEnd)
		assertBalancedPlain(t, events, EventEmbeddedStart, EventEmbeddedEnd)
		assertBalancedPlain(t, events, EventDirectiveStart, EventDirectiveEnd)
		assertBalancedPlain(t, events, EventFreeformStart, EventFreeformEnd)
	})
}

// FuzzParserDeterminism covers the idempotence invariant: parsing the same
// bytes twice must yield identical event vectors.
func FuzzParserDeterminism(f *testing.F) {
	seedCorpus(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		first := NewParser(data).Parse()
		second := NewParser(data).Parse()
		if len(first) != len(second) {
			t.Fatalf("non-deterministic event count: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("non-deterministic event at %d: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}

// FuzzParserTruncationStaysBalanced covers spec.md §8.4's truncation target:
// any prefix of the fuzzer's input must still close every open frame at EOF.
func FuzzParserTruncationStaysBalanced(f *testing.F) {
	seedCorpus(f)
	f.Fuzz(func(t *testing.T, data []byte) {
		for cut := 0; cut <= len(data); cut += 1 + len(data)/8 {
			prefix := data[:cut]
			events := NewParser(prefix).Parse()
			assertBalancedPlain(t, events, EventElementStart, EventElementEnd)
			assertBalancedPlain(t, events, EventEmbeddedStart, EventEmbeddedEnd)
			assertBalancedPlain(t, events, EventDirectiveStart, EventDirectiveEnd)
			assertBalancedPlain(t, events, EventFreeformStart, EventFreeformEnd)
		}
	})
}

// assertBalancedPlain is assertBalanced without the testify/assert
// dependency, so the fuzz targets stay on *testing.T's own fatal path (the
// corpus-minimizing harness wants a plain failure, not an assertion log).
func assertBalancedPlain(t *testing.T, events []Event, start, end EventKind) {
	t.Helper()
	var opens, closes int
	for _, e := range events {
		if e.Kind == start {
			opens++
		}
		if e.Kind == end {
			closes++
		}
	}
	if opens != closes {
		t.Fatalf("%v/%v unbalanced: %d opens, %d closes", start, end, opens, closes)
	}
}
