// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"fillmore-labs.com/linqguard/syntax"
)

// Current wire schema version, incremented when the wire format changes.
const schemaVersion uint16 = 1

// ErrSchema is returned when decoding findings written with a different schema.
var ErrSchema = errors.New("unsupported finding schema")

type wireSpan struct {
	Start  uint32 `msgpack:"s"`
	Length uint32 `msgpack:"l"`
}

type wireFinding struct {
	Rule    string     `msgpack:"r"`
	Span    wireSpan   `msgpack:"p"`
	Args    []string   `msgpack:"a,omitempty"`
	Related []wireSpan `msgpack:"x,omitempty"`
}

type wirePayload struct {
	Schema   uint16        `msgpack:"v"`
	Findings []wireFinding `msgpack:"f"`
}

func toWireSpan(s syntax.Span) (wireSpan, error) {
	if !s.Valid() {
		return wireSpan{}, fmt.Errorf("%w: %v", ErrSpanRange, s)
	}

	start, err := safecast.Conv[uint32](s.Start)
	if err != nil {
		return wireSpan{}, fmt.Errorf("%w: %w", ErrSpanRange, err)
	}

	length, err := safecast.Conv[uint32](s.Len())
	if err != nil {
		return wireSpan{}, fmt.Errorf("%w: %w", ErrSpanRange, err)
	}

	return wireSpan{Start: start, Length: length}, nil
}

func (w wireSpan) span() (syntax.Span, error) {
	start, err := safecast.Conv[int](w.Start)
	if err != nil {
		return syntax.Span{}, fmt.Errorf("%w: %w", ErrSpanRange, err)
	}

	length, err := safecast.Conv[int](w.Length)
	if err != nil {
		return syntax.Span{}, fmt.Errorf("%w: %w", ErrSpanRange, err)
	}

	return syntax.Span{Start: start, End: start + length}, nil
}

func toWire(f Finding) (wireFinding, error) {
	span, err := toWireSpan(f.Span)
	if err != nil {
		return wireFinding{}, err
	}

	w := wireFinding{Rule: f.Rule, Span: span, Args: f.Args}

	for _, r := range f.Related {
		rs, err := toWireSpan(r)
		if err != nil {
			return wireFinding{}, err
		}

		w.Related = append(w.Related, rs)
	}

	return w, nil
}

func (w wireFinding) finding() (Finding, error) {
	span, err := w.Span.span()
	if err != nil {
		return Finding{}, err
	}

	f := Finding{Rule: w.Rule, Span: span, Args: w.Args}

	for _, r := range w.Related {
		rs, err := r.span()
		if err != nil {
			return Finding{}, err
		}

		f.Related = append(f.Related, rs)
	}

	return f, nil
}

// Marshal encodes a single finding.
func Marshal(f Finding) ([]byte, error) {
	w, err := toWire(f)
	if err != nil {
		return nil, err
	}

	return msgpack.Marshal(&w)
}

// Unmarshal decodes a single finding encoded by [Marshal].
func Unmarshal(data []byte) (Finding, error) {
	var w wireFinding
	if err := msgpack.Unmarshal(data, &w); err != nil {
		return Finding{}, err
	}

	return w.finding()
}

// Encode writes a versioned batch of findings to w.
func Encode(w io.Writer, findings []Finding) error {
	payload := wirePayload{Schema: schemaVersion, Findings: make([]wireFinding, 0, len(findings))}

	for _, f := range findings {
		wf, err := toWire(f)
		if err != nil {
			return fmt.Errorf("finding %s at %v: %w", f.Rule, f.Span, err)
		}

		payload.Findings = append(payload.Findings, wf)
	}

	return msgpack.NewEncoder(w).Encode(&payload)
}

// Decode reads a batch of findings written by [Encode].
func Decode(r io.Reader) ([]Finding, error) {
	var payload wirePayload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.Schema != schemaVersion {
		return nil, fmt.Errorf("%w: version %d", ErrSchema, payload.Schema)
	}

	findings := make([]Finding, 0, len(payload.Findings))

	for _, w := range payload.Findings {
		f, err := w.finding()
		if err != nil {
			return nil, err
		}

		findings = append(findings, f)
	}

	return findings, nil
}
