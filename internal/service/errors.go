package service

import (
	"errors"

	"github.com/MKhiriev/go-dream-journal/internal/validators"
)

var (
	// ErrMissingUsername is returned when an operation needs the profile
	// username and no profile is stored.
	ErrMissingUsername = errors.New("missing username")
	// ErrInvalidDream is returned when a draft fails validation.
	ErrInvalidDream = validators.ErrInvalidDream
	// ErrCreateDream wraps a failed create request.
	ErrCreateDream = errors.New("create dream on server")
	// ErrDeleteDream wraps a failed delete request.
	ErrDeleteDream = errors.New("delete dream on server")
)
