// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-community-share/models"
)

// Each mock method delegates to its function field; a nil field panics, so
// tests only set what the exercised route calls.

type mockAuthService struct {
	signupFn               func(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)
	authenticateFn         func(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	requestResetPasswordFn func(ctx context.Context, email string) error
	resetPasswordFn        func(ctx context.Context, req models.ResetPasswordRequest) (models.AuthResult, error)
	confirmEmailFn         func(ctx context.Context, key string) (models.User, error)
	createTokenFn          func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn           func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Authenticate(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	return m.authenticateFn(ctx, creds)
}

func (m *mockAuthService) RequestResetPassword(ctx context.Context, email string) error {
	return m.requestResetPasswordFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.AuthResult, error) {
	return m.resetPasswordFn(ctx, req)
}

func (m *mockAuthService) ConfirmEmail(ctx context.Context, key string) (models.User, error) {
	return m.confirmEmailFn(ctx, key)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockResourceService[T models.Item] struct {
	getFn    func(ctx context.Context, id int64) (T, error)
	listFn   func(ctx context.Context, query url.Values) ([]T, error)
	createFn func(ctx context.Context, item T) (T, error)
	updateFn func(ctx context.Context, id int64, item T) (T, error)
}

func (m *mockResourceService[T]) Get(ctx context.Context, id int64) (T, error) {
	return m.getFn(ctx, id)
}

func (m *mockResourceService[T]) List(ctx context.Context, query url.Values) ([]T, error) {
	return m.listFn(ctx, query)
}

func (m *mockResourceService[T]) Create(ctx context.Context, item T) (T, error) {
	return m.createFn(ctx, item)
}

func (m *mockResourceService[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	return m.updateFn(ctx, id, item)
}

type mockUserService struct {
	mockResourceService[models.User]
	getByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return m.getByEmailFn(ctx, email)
}

type mockSearchService struct {
	mockResourceService[models.Search]
	resultsFn func(ctx context.Context, id int64) ([]models.Search, error)
}

func (m *mockSearchService) Results(ctx context.Context, id int64) ([]models.Search, error) {
	return m.resultsFn(ctx, id)
}

type mockStatisticsService struct {
	stats models.Statistics
	err   error
}

func (m *mockStatisticsService) GetStatistics(context.Context) (models.Statistics, error) {
	return m.stats, m.err
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(context.Context) models.BuildInfoResponse {
	return models.BuildInfoResponse{Version: m.version, Date: "N/A", Commit: "N/A"}
}
