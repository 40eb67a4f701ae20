package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pharmaradar/internal/domain"
	"pharmaradar/internal/tokenstore"
)

// SessionServiceImpl spina magazyn tokenów z usługą auth. Zalogowanie to
// obecność tokenu w magazynie, ważność tokenu weryfikuje dopiero backend
// przy sondzie /auth/user/me.
type SessionServiceImpl struct {
	auth   AuthService
	store  tokenstore.TokenStore
	logger *zap.Logger
}

func NewSessionService(auth AuthService, store tokenstore.TokenStore, logger *zap.Logger) *SessionServiceImpl {
	return &SessionServiceImpl{
		auth:   auth,
		store:  store,
		logger: logger,
	}
}

func (s *SessionServiceImpl) Login(ctx context.Context, dto domain.LoginRequest) (string, *domain.User, error) {
	resp, err := s.auth.Login(ctx, dto)
	if err != nil {
		return "", nil, err
	}

	sessionID := uuid.New().String()

	if resp.AccessToken != "" {
		tokens := domain.Tokens{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
		}
		if err := s.store.SetTokens(ctx, sessionID, tokens); err != nil {
			s.logger.Error("błąd zapisu tokenów sesji", zap.Error(err))
			return "", nil, err
		}
	}

	return sessionID, &resp.User, nil
}

func (s *SessionServiceImpl) Register(ctx context.Context, dto domain.RegisterRequest) (string, *domain.User, error) {
	resp, err := s.auth.Register(ctx, dto)
	if err != nil {
		return "", nil, err
	}

	sessionID := uuid.New().String()

	if resp.Tokens.AccessToken != "" {
		if err := s.store.SetTokens(ctx, sessionID, resp.Tokens); err != nil {
			s.logger.Error("błąd zapisu tokenów sesji", zap.Error(err))
			return "", nil, err
		}
	}

	return sessionID, &resp.User, nil
}

func (s *SessionServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.store.RemoveTokens(ctx, sessionID)
}

func (s *SessionServiceImpl) Status(ctx context.Context, sessionID string) domain.SessionState {
	if sessionID == "" || !s.store.IsAuthenticated(ctx, sessionID) {
		return domain.SessionState{}
	}

	user, err := s.auth.CurrentUser(ctx, sessionID)
	if err != nil {
		// token jest w magazynie, ale backend go nie przyjął - traktujemy
		// jak nieważny i czyścimy
		s.logger.Warn("sonda sesji odrzucona, czyszczenie tokenów", zap.Error(err))
		if err := s.store.RemoveTokens(ctx, sessionID); err != nil {
			s.logger.Error("błąd czyszczenia tokenów sesji", zap.Error(err))
		}
		return domain.SessionState{}
	}

	return domain.SessionState{
		IsAuthenticated: true,
		User:            user,
	}
}

func (s *SessionServiceImpl) UpdateUser(ctx context.Context, sessionID string, dto domain.UpdateUserDTO) (*domain.User, error) {
	return s.auth.UpdateUser(ctx, sessionID, dto)
}
