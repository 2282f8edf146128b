package tui

import (
	"github.com/MKhiriev/go-dream-journal/models"
)

type authDoneMsg struct {
	session models.Session
	ok      bool
}

type collectionChangedMsg struct {
	name  models.Collection
	items []models.Dream
}

type noticeMsg struct {
	text string
}

type loadingMsg struct {
	view models.View
	on   bool
}

type viewLoadedMsg struct {
	view    models.View
	fetched bool
}

type prefetchDoneMsg struct {
	views []models.View
}

type createDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type loggedOutMsg struct{}

type clearStatusMsg struct {
	seq int
}
