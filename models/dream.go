// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Dream is a single journal record owned by the server.
//
// The client only reads, creates and deletes dreams; it never patches one in
// place. Decoding is tolerant because the backend is not consistent about
// scalar encodings: identifiers arrive as numbers or strings, flags as
// booleans or 0/1, levels as numbers or numeric strings.
type Dream struct {
	// ID identifies the dream on the server. Empty for drafts.
	ID DreamID `json:"id,omitempty"`

	// UserID is the numeric owner identifier, when the server exposes it.
	UserID *Number `json:"user_id,omitempty"`

	Title string `json:"title,omitempty" validate:"required"`
	Body  string `json:"body,omitempty"`

	// Owner is the embedded owner object of public feeds. DisplayName is the
	// flat variant some endpoints return instead.
	Owner       *Owner `json:"owner,omitempty"`
	DisplayName string `json:"displayName,omitempty"`

	DateEvent    string `json:"date_event,omitempty"`
	DateCreated  string `json:"date_created,omitempty"`
	DateOccurred string `json:"date_occurred,omitempty"`
	DateHour     string `json:"date_hour,omitempty"`

	Location string `json:"location,omitempty"`

	Lucidity   *Number `json:"lucidity,omitempty" validate:"omitempty,gte=0"`
	Importance *Number `json:"importance,omitempty" validate:"omitempty,gte=0"`

	IsPublic      Flag `json:"is_public,omitempty"`
	IsOccurred    Flag `json:"is_occurred,omitempty"`
	IsSpoiler     Flag `json:"is_spoiler,omitempty"`
	IsLocked      Flag `json:"is_locked,omitempty"`
	IsImagination Flag `json:"is_imagination,omitempty"`

	Foreshadowing  Text `json:"foreshadowing,omitempty"`
	Narration      Text `json:"narration,omitempty"`
	People         Text `json:"people,omitempty"`
	Purpose        Text `json:"purpose,omitempty"`
	Cause          Text `json:"cause,omitempty"`
	Interpretation Text `json:"interpretation,omitempty"`
	Opinion        Text `json:"opinion,omitempty"`
}

// Owner is the author block embedded into public dreams.
type Owner struct {
	DisplayName string `json:"display_name,omitempty"`
}

// OwnerName returns the best available author name: the embedded owner block
// first, then the flat displayName field.
func (d Dream) OwnerName() string {
	if d.Owner != nil && d.Owner.DisplayName != "" {
		return d.Owner.DisplayName
	}
	return d.DisplayName
}

// Clone returns a deep copy of d so that callers can never mutate pointers
// shared with a cached collection.
func (d Dream) Clone() Dream {
	c := d
	if d.UserID != nil {
		v := *d.UserID
		c.UserID = &v
	}
	if d.Owner != nil {
		o := *d.Owner
		c.Owner = &o
	}
	if d.Lucidity != nil {
		v := *d.Lucidity
		c.Lucidity = &v
	}
	if d.Importance != nil {
		v := *d.Importance
		c.Importance = &v
	}
	return c
}

// CloneDreams deep copies a collection. A nil input yields an empty,
// non-nil slice.
func CloneDreams(items []Dream) []Dream {
	out := make([]Dream, len(items))
	for i, d := range items {
		out[i] = d.Clone()
	}
	return out
}

// ErrNotDream marks a normalized element that is not a JSON object.
var ErrNotDream = errors.New("element is not a dream object")

// DecodeDreams decodes normalized elements into dreams. Elements that are
// not JSON objects, or that fail to decode, are skipped; each skip is
// reported as an error naming the element index.
func DecodeDreams(raws []json.RawMessage) ([]Dream, []error) {
	items := make([]Dream, 0, len(raws))
	var skipped []error
	for i, raw := range raws {
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			skipped = append(skipped, fmt.Errorf("element %d: %w", i, ErrNotDream))
			continue
		}
		var d Dream
		if err := json.Unmarshal(trimmed, &d); err != nil {
			skipped = append(skipped, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		items = append(items, d)
	}
	return items, skipped
}

// DreamFilter is the optional body of the personal feed request. When it is
// supplied the feed is requested with POST instead of GET.
type DreamFilter struct {
	Query    string `json:"query,omitempty"`
	IsPublic *bool  `json:"is_public,omitempty"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}
