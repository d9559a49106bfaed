// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-community-share/internal/adapter"
	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

type clientUserService struct {
	adapter adapter.ServerAdapter
	keeper  *sessionKeeper
	logger  *logger.Logger
}

func newClientUserService(serverAdapter adapter.ServerAdapter, keeper *sessionKeeper, logger *logger.Logger) ClientUserService {
	return &clientUserService{adapter: serverAdapter, keeper: keeper, logger: logger}
}

func (u *clientUserService) Get(ctx context.Context, id int64) (models.User, error) {
	user, err := u.adapter.Users().Get(ctx, id)
	if err != nil {
		u.logger.Debug().Err(err).Str("func", "*clientUserService.Get").Int64("user_id", id).Msg("user lookup failed")
		return models.User{}, &ViewError{Message: fmt.Sprintf(app.MsgCouldNotFindUser, id), Err: err}
	}
	return user, nil
}

func (u *clientUserService) SaveSettings(ctx context.Context, edited models.User) (models.User, error) {
	toSave := edited.Clone()
	toSave.InstitutionAssociations = models.FilterInstitutionAssociations(toSave.InstitutionAssociations)

	saved, err := u.adapter.Users().Save(ctx, toSave)
	if err != nil {
		return models.User{}, newViewError(app.MsgFailedToUpdateSettings, err)
	}

	if u.keeper.session.UpdateActiveUser(saved) {
		u.keeper.persist(ctx)
	}
	return saved, nil
}
