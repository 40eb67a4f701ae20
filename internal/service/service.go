package service

import (
	"context"

	"go.uber.org/zap"

	"pharmaradar/config"
	"pharmaradar/internal/domain"
	"pharmaradar/internal/tokenstore"
	"pharmaradar/internal/upstream"
)

type Deps struct {
	Client *upstream.Client
	Store  tokenstore.TokenStore
	Logger *zap.Logger
	Config *config.Config
}

type Services struct {
	Auth       AuthService
	Session    SessionService
	Drug       DrugService
	DrugEvent  DrugEventService
	News       NewsService
	Regulation RegulationService
}

func NewServices(deps Deps) *Services {
	auth := NewAuthService(deps.Client, deps.Logger)

	return &Services{
		Auth:       auth,
		Session:    NewSessionService(auth, deps.Store, deps.Logger),
		Drug:       NewDrugService(deps.Client, deps.Logger),
		DrugEvent:  NewDrugEventService(deps.Client, deps.Logger),
		News:       NewNewsService(deps.Client, deps.Logger),
		Regulation: NewRegulationService(deps.Client, deps.Logger),
	}
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest) (*domain.LoginResponse, error)
	Register(ctx context.Context, dto domain.RegisterRequest) (*domain.RegisterResponse, error)
	CurrentUser(ctx context.Context, sessionID string) (*domain.User, error)
	UpdateUser(ctx context.Context, sessionID string, dto domain.UpdateUserDTO) (*domain.User, error)
}

// SessionService to jawny, wstrzykiwany kontener stanu zalogowania,
// testowalny bez warstwy HTTP.
type SessionService interface {
	Login(ctx context.Context, dto domain.LoginRequest) (string, *domain.User, error)
	Register(ctx context.Context, dto domain.RegisterRequest) (string, *domain.User, error)
	Logout(ctx context.Context, sessionID string) error
	Status(ctx context.Context, sessionID string) domain.SessionState
	UpdateUser(ctx context.Context, sessionID string, dto domain.UpdateUserDTO) (*domain.User, error)
}

type DrugService interface {
	List(ctx context.Context, sessionID string) ([]domain.Drug, error)
	GetByID(ctx context.Context, sessionID string, id int64) (*domain.Drug, error)
	AlternativesBySubstance(ctx context.Context, sessionID, substance string) ([]domain.Drug, error)
}

type DrugEventService interface {
	List(ctx context.Context, sessionID string, filter domain.DrugEventFilter) ([]domain.DrugEvent, error)
	Recent(ctx context.Context, sessionID string, limit int) ([]domain.DrugEvent, error)
	GetByID(ctx context.Context, sessionID string, id int64) (*domain.DrugEvent, error)
}

type NewsService interface {
	List(ctx context.Context, sessionID string) ([]domain.News, error)
	GetByID(ctx context.Context, sessionID string, id int64) (*domain.News, error)
}

type RegulationService interface {
	List(ctx context.Context, sessionID string, opts domain.RegulationListOptions) ([]domain.Regulation, error)
	GetByID(ctx context.Context, sessionID string, id int64) (*domain.RegulationDetail, error)
}
