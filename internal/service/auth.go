package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pharmaradar/internal/domain"
	"pharmaradar/internal/upstream"
)

type AuthServiceImpl struct {
	client *upstream.Client
	logger *zap.Logger
}

func NewAuthService(client *upstream.Client, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		client: client,
		logger: logger,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest) (*domain.LoginResponse, error) {
	var resp domain.LoginResponse
	if err := s.client.Post(ctx, "", "/auth/login", dto, &resp); err != nil {
		s.logger.Error("błąd przy logowaniu", zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return &resp, nil
}

func (s *AuthServiceImpl) Register(ctx context.Context, dto domain.RegisterRequest) (*domain.RegisterResponse, error) {
	if dto.AccountType == "" {
		dto.AccountType = domain.AccountTypePharmacy
	}

	var resp domain.RegisterResponse
	if err := s.client.Post(ctx, "", "/auth/register", dto, &resp); err != nil {
		s.logger.Error("błąd przy rejestracji", zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return &resp, nil
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	var user domain.User
	if err := s.client.Get(ctx, sessionID, "/auth/user/me", &user); err != nil {
		s.logger.Error("błąd przy pobieraniu danych użytkownika", zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return &user, nil
}

func (s *AuthServiceImpl) UpdateUser(ctx context.Context, sessionID string, dto domain.UpdateUserDTO) (*domain.User, error) {
	var user domain.User
	if err := s.client.Patch(ctx, sessionID, "/auth/user/update", dto, &user); err != nil {
		s.logger.Error("błąd przy aktualizacji użytkownika", zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return &user, nil
}
