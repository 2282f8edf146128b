// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"slices"
	"strconv"
)

// envelopeKind tags the shape an inbound payload arrived in.
type envelopeKind int

const (
	envelopeEmpty envelopeKind = iota
	envelopeSequence
	envelopeWrapped
	envelopeKeyed
	envelopeEncoded
	envelopeSingle
)

func (k envelopeKind) String() string {
	switch k {
	case envelopeEmpty:
		return "empty"
	case envelopeSequence:
		return "sequence"
	case envelopeWrapped:
		return "wrapped"
	case envelopeKeyed:
		return "keyed"
	case envelopeEncoded:
		return "encoded"
	case envelopeSingle:
		return "single"
	default:
		return "unknown"
	}
}

// envelope is a classified payload together with the elements it carries.
type envelope struct {
	kind  envelopeKind
	items []json.RawMessage
}

// wrapperFields are the object fields that may carry the sequence, in the
// order they are tried.
var wrapperFields = []string{"data", "items", "dreams"}

// Normalize flattens any supported response envelope into a sequence of raw
// elements:
//
//   - null, false, "" and an empty body yield an empty sequence;
//   - an array is returned element by element;
//   - an object with an array under data, items or dreams yields that array;
//   - an object whose values are all objects yields those values;
//   - a string holding an encoded array yields the decoded array;
//   - anything else becomes a one-element sequence.
//
// Normalize never fails; input that is not JSON yields an empty sequence.
// The result is never nil.
func Normalize(raw []byte) []json.RawMessage {
	return classify(raw).items
}

func classify(raw []byte) envelope {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return envelope{kind: envelopeEmpty, items: []json.RawMessage{}}
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			return envelope{kind: envelopeSequence, items: nonNil(items)}
		}
	case '{':
		if env, ok := classifyObject(raw); ok {
			return env
		}
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s == "" {
				return envelope{kind: envelopeEmpty, items: []json.RawMessage{}}
			}
			var items []json.RawMessage
			if err = json.Unmarshal([]byte(s), &items); err == nil && items != nil {
				return envelope{kind: envelopeEncoded, items: items}
			}
		}
	case 'n', 'f':
		if bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("false")) {
			return envelope{kind: envelopeEmpty, items: []json.RawMessage{}}
		}
	}

	return envelope{kind: envelopeSingle, items: []json.RawMessage{json.RawMessage(raw)}}
}

func classifyObject(raw []byte) (envelope, bool) {
	members, err := decodeMembers(raw)
	if err != nil {
		return envelope{}, false
	}

	for _, field := range wrapperFields {
		for _, m := range members {
			if m.key != field || !isArray(m.value) {
				continue
			}
			var items []json.RawMessage
			if err = json.Unmarshal(m.value, &items); err == nil {
				return envelope{kind: envelopeWrapped, items: nonNil(items)}, true
			}
		}
	}

	if len(members) == 0 {
		return envelope{}, false
	}
	for _, m := range members {
		if !isObjectLike(m.value) {
			return envelope{}, false
		}
	}

	ordered := orderMembers(members)
	items := make([]json.RawMessage, 0, len(ordered))
	for _, m := range ordered {
		items = append(items, m.value)
	}
	return envelope{kind: envelopeKeyed, items: items}, true
}

type member struct {
	key   string
	value json.RawMessage
}

// decodeMembers reads the members of a JSON object in document order. A
// repeated key keeps its first position and its last value.
func decodeMembers(raw []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var members []member
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("object key is not a string")
		}
		var value json.RawMessage
		if err = dec.Decode(&value); err != nil {
			return nil, err
		}
		if i, seen := index[key]; seen {
			members[i].value = value
			continue
		}
		index[key] = len(members)
		members = append(members, member{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return members, nil
}

// orderMembers puts index-like keys first in ascending numeric order and
// keeps every other key in document order, matching JavaScript property
// enumeration.
func orderMembers(members []member) []member {
	var indexed, named []member
	for _, m := range members {
		if _, ok := arrayIndex(m.key); ok {
			indexed = append(indexed, m)
		} else {
			named = append(named, m)
		}
	}
	slices.SortStableFunc(indexed, func(a, b member) int {
		x, _ := arrayIndex(a.key)
		y, _ := arrayIndex(b.key)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	})
	return append(indexed, named...)
}

func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	return n, true
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

// isObjectLike matches objects, arrays and null.
func isObjectLike(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && (raw[0] == '{' || raw[0] == '[' || raw[0] == 'n')
}

func nonNil(items []json.RawMessage) []json.RawMessage {
	if items == nil {
		return []json.RawMessage{}
	}
	return items
}
