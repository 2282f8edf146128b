// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// DreamID is a server identifier that may be encoded either as a JSON number
// or as a JSON string. Numeric identifiers are written back as numbers.
type DreamID string

// UnmarshalJSON implements [json.Unmarshaler].
func (id *DreamID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode dream id: %w", err)
		}
		*id = DreamID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode dream id: %w", err)
	}
	*id = DreamID(n.String())
	return nil
}

// MarshalJSON implements [json.Marshaler]. Only identifiers in canonical
// integer form are written as numbers; "007" or "+5" stay strings.
func (id DreamID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// String returns the identifier as text, suitable for URL paths.
func (id DreamID) String() string {
	return string(id)
}

// Number is a numeric level (lucidity, importance) that tolerates numeric
// strings on input.
type Number float64

// UnmarshalJSON implements [json.Unmarshaler]. Empty strings decode to zero.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*n = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode number: %w", err)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("decode number %q: %w", s, err)
		}
		*n = Number(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("decode number: %w", err)
	}
	*n = Number(v)
	return nil
}

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	return float64(n)
}

// String formats n without a trailing fraction for whole values.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// NumberOf is a convenience constructor for optional levels.
func NumberOf(v float64) *Number {
	n := Number(v)
	return &n
}

// Flag is a boolean that also accepts 0/1 and their string forms, which is
// how the dream editor submits checkboxes.
type Flag bool

// UnmarshalJSON implements [json.Unmarshaler].
func (f *Flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch strings.ToLower(strings.Trim(string(b), `"`)) {
	case "true", "1", "yes", "on":
		*f = true
	case "false", "0", "no", "off", "", "null":
		*f = false
	default:
		return fmt.Errorf("decode flag: unexpected value %s", b)
	}
	return nil
}

// Text is a free-text annotation. Older editor builds submitted some of
// these fields as lists or numbers, so any JSON value is accepted: strings
// as is, scalars as their literal, arrays joined with ", ", objects as
// compact JSON.
type Text string

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, jsonNull):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode text: %w", err)
		}
		*t = Text(s)
	case b[0] == '[':
		var items []Text
		if err := json.Unmarshal(b, &items); err != nil {
			return fmt.Errorf("decode text list: %w", err)
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if item != "" {
				parts = append(parts, string(item))
			}
		}
		*t = Text(strings.Join(parts, ", "))
	case b[0] == '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			return fmt.Errorf("decode text object: %w", err)
		}
		*t = Text(buf.String())
	default:
		if !json.Valid(b) {
			return fmt.Errorf("decode text: invalid value %s", b)
		}
		*t = Text(b)
	}
	return nil
}
