package service

import (
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/models"
)

// NotifierFunc adapts a plain function to [Notifier].
type NotifierFunc func(message string)

// Notify implements [Notifier].
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// LoadingFunc adapts a plain function to [LoadingIndicator].
type LoadingFunc func(view models.View, loading bool)

// SetLoading implements [LoadingIndicator].
func (f LoadingFunc) SetLoading(view models.View, loading bool) {
	f(view, loading)
}

// NewLogNotifier returns a [Notifier] that writes every notice to log. It is
// used when no screen is attached.
func NewLogNotifier(log *logger.Logger) Notifier {
	return NotifierFunc(func(message string) {
		log.Info().Str("notice", message).Msg("user notice")
	})
}

// NopLoadingIndicator ignores loading changes.
var NopLoadingIndicator LoadingIndicator = LoadingFunc(func(models.View, bool) {})
