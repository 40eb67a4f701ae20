package tokenstore

import (
	"context"
	"errors"

	"pharmaradar/internal/domain"
)

var ErrNotFound = errors.New("brak tokenów dla sesji")

// TokenStore trzyma parę tokenów backendu per sesja przeglądarki.
// Sama obecność access tokenu oznacza zalogowanie, wygaśnięcie tokenu
// wychodzi dopiero przy odmowie backendu.
type TokenStore interface {
	SetTokens(ctx context.Context, sessionID string, tokens domain.Tokens) error
	GetTokens(ctx context.Context, sessionID string) (domain.Tokens, error)
	RemoveTokens(ctx context.Context, sessionID string) error
	IsAuthenticated(ctx context.Context, sessionID string) bool
}
