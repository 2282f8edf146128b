// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Collection names one of the cached dream lists.
type Collection string

const (
	// PublicCollection holds the global feed.
	PublicCollection Collection = "public"

	// PersonalCollection holds the dreams of the signed-in user.
	PersonalCollection Collection = "personal"
)

// Collections lists every known collection in a stable order.
var Collections = []Collection{PublicCollection, PersonalCollection}

// SnapshotKey returns the durable storage key of the collection snapshot.
func (c Collection) SnapshotKey() string {
	return string(c) + "_cache"
}

// View identifies a navigable screen of the client.
type View string

const (
	MainView   View = "main"
	MeView     View = "me"
	SearchView View = "search"
	PeopleView View = "people"
)

// Views lists every view in navigation order.
var Views = []View{MainView, MeView, SearchView, PeopleView}
