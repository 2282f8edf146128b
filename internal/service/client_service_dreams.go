// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-dream-journal/internal/adapter"
	"github.com/MKhiriev/go-dream-journal/internal/app"
	"github.com/MKhiriev/go-dream-journal/internal/logger"
	"github.com/MKhiriev/go-dream-journal/internal/validators"
	"github.com/MKhiriev/go-dream-journal/models"
)

type clientDreamService struct {
	session   SessionStorage
	adapter   adapter.ServerAdapter
	notifier  Notifier
	validator validators.Validator

	logger *logger.Logger
}

func NewClientDreamService(session SessionStorage, serverAdapter adapter.ServerAdapter, notifier Notifier, logger *logger.Logger) ClientDreamService {
	return &clientDreamService{
		session:   session,
		adapter:   serverAdapter,
		notifier:  notifier,
		validator: validators.NewDreamValidator(),
		logger:    logger,
	}
}

func (s *clientDreamService) FetchPublic(ctx context.Context) []models.Dream {
	raws, err := s.adapter.GetPublicDreams(ctx)
	if err != nil {
		return s.fallback(ctx, models.PublicCollection, app.MsgPublicLoadFailed, err)
	}
	return s.store(ctx, models.PublicCollection, raws)
}

func (s *clientDreamService) FetchPersonal(ctx context.Context, filter *models.DreamFilter) []models.Dream {
	session := s.session.Session()

	raws, err := s.adapter.GetPersonalDreams(ctx, session.Username(), session.Token, filter)
	if err != nil {
		return s.fallback(ctx, models.PersonalCollection, app.MsgPersonalLoadFailed, err)
	}
	return s.store(ctx, models.PersonalCollection, raws)
}

func (s *clientDreamService) Create(ctx context.Context, dream models.Dream) (json.RawMessage, error) {
	username := s.session.Session().Username()
	if username == "" {
		s.notifier.Notify(noticeFor(app.MsgCreateFailed, ErrMissingUsername))
		return nil, ErrMissingUsername
	}

	if err := s.validator.Validate(ctx, dream); err != nil {
		s.notifier.Notify(noticeFor(app.MsgCreateFailed, err))
		return nil, err
	}

	created, err := s.adapter.CreateDream(ctx, username, dream)
	if err != nil {
		s.logger.Err(err).Str("func", "clientDreamService.Create").Msg("create failed")
		s.notifier.Notify(noticeFor(app.MsgCreateFailed, err))
		return nil, fmt.Errorf("%w: %w", ErrCreateDream, err)
	}

	s.logger.Info().Str("func", "clientDreamService.Create").Str("username", username).Msg("dream created")
	return created, nil
}

func (s *clientDreamService) Delete(ctx context.Context, id models.DreamID) error {
	if err := s.adapter.DeleteDream(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "clientDreamService.Delete").Str("id", id.String()).Msg("delete failed")
		s.notifier.Notify(noticeFor(app.MsgDeleteFailed, err))
		return fmt.Errorf("%w: %w", ErrDeleteDream, err)
	}

	s.logger.Info().Str("func", "clientDreamService.Delete").Str("id", id.String()).Msg("dream deleted")
	return nil
}

// store decodes normalized elements and replaces the collection with them.
func (s *clientDreamService) store(ctx context.Context, name models.Collection, raws []json.RawMessage) []models.Dream {
	items, skipped := models.DecodeDreams(raws)
	for _, err := range skipped {
		s.logger.Warn().
			Err(err).
			Str("func", "clientDreamService.store").
			Str("collection", string(name)).
			Msg("dropped element that is not a dream")
	}

	s.session.SetCollection(ctx, name, items)
	return items
}

// fallback shows notice and republishes the last snapshot of the collection
// so that the store matches what is rendered.
func (s *clientDreamService) fallback(ctx context.Context, name models.Collection, notice string, cause error) []models.Dream {
	s.logger.Warn().
		Err(cause).
		Str("func", "clientDreamService.fallback").
		Str("collection", string(name)).
		Msg("fetch failed, serving cached snapshot")
	s.notifier.Notify(notice)

	items := s.session.Snapshot(ctx, name)
	s.session.SetCollection(ctx, name, items)
	return items
}
