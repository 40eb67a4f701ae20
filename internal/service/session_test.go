package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharmaradar/config"
	"pharmaradar/internal/domain"
	"pharmaradar/internal/tokenstore"
	"pharmaradar/internal/upstream"
)

const (
	testAccessToken  = "access-abc"
	testRefreshToken = "refresh-abc"
)

// fakeBackend udaje backend apteczny na potrzeby testów sesji.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Email != "jan@apteka.pl" || req.Password != "tajnehaslo" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Niepoprawne dane logowania"})
			return
		}

		json.NewEncoder(w).Encode(domain.LoginResponse{
			AccessToken:  testAccessToken,
			RefreshToken: testRefreshToken,
			User: domain.User{
				ID:          7,
				Email:       "jan@apteka.pl",
				FirstName:   "Jan",
				LastName:    "Kowalski",
				AccountType: domain.AccountTypePharmacy,
			},
		})
	})

	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req domain.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.AccountType)

		json.NewEncoder(w).Encode(domain.RegisterResponse{
			User: domain.User{
				ID:          8,
				Email:       req.Email,
				FirstName:   req.FirstName,
				LastName:    req.LastName,
				AccountType: req.AccountType,
			},
			Tokens: domain.Tokens{
				AccessToken:  testAccessToken,
				RefreshToken: testRefreshToken,
			},
			Message: "Konto utworzone",
		})
	})

	mux.HandleFunc("/auth/user/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testAccessToken {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Token jest nieważny"})
			return
		}

		json.NewEncoder(w).Encode(domain.User{
			ID:          7,
			Email:       "jan@apteka.pl",
			FirstName:   "Jan",
			LastName:    "Kowalski",
			AccountType: domain.AccountTypePharmacy,
		})
	})

	mux.HandleFunc("/auth/user/update", func(w http.ResponseWriter, r *http.Request) {
		var dto domain.UpdateUserDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))

		user := domain.User{
			ID:          7,
			Email:       "jan@apteka.pl",
			FirstName:   "Jan",
			LastName:    "Kowalski",
			AccountType: domain.AccountTypePharmacy,
		}
		if dto.FirstName != nil {
			user.FirstName = *dto.FirstName
		}

		json.NewEncoder(w).Encode(user)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestSession(t *testing.T) (*SessionServiceImpl, *tokenstore.MemoryStore) {
	t.Helper()

	server := fakeBackend(t)

	store := tokenstore.NewMemoryStore(time.Hour)
	client := upstream.NewClient(config.UpstreamConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, store, zap.NewNop())

	auth := NewAuthService(client, zap.NewNop())

	return NewSessionService(auth, store, zap.NewNop()), store
}

func TestSessionLoginLogoutRoundTrip(t *testing.T) {
	session, store := newTestSession(t)
	ctx := context.Background()

	state := session.Status(ctx, "")
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)

	sessionID, user, err := session.Login(ctx, domain.LoginRequest{
		Email:    "jan@apteka.pl",
		Password: "tajnehaslo",
	})
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	require.NotNil(t, user)
	assert.Equal(t, "jan@apteka.pl", user.Email)

	state = session.Status(ctx, sessionID)
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, int64(7), state.User.ID)

	require.NoError(t, session.Logout(ctx, sessionID))

	state = session.Status(ctx, sessionID)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.False(t, store.IsAuthenticated(ctx, sessionID))
}

func TestSessionLoginBadCredentials(t *testing.T) {
	session, _ := newTestSession(t)

	_, _, err := session.Login(context.Background(), domain.LoginRequest{
		Email:    "jan@apteka.pl",
		Password: "zlehaslo",
	})
	require.Error(t, err)
	// usługa przepisuje błąd na komunikat do wyświetlenia
	assert.Equal(t, "Niepoprawne dane logowania", err.Error())
}

func TestSessionStatusClearsInvalidToken(t *testing.T) {
	session, store := newTestSession(t)
	ctx := context.Background()

	sessionID := "sesja-z-niewaznym-tokenem"
	require.NoError(t, store.SetTokens(ctx, sessionID, domain.Tokens{
		AccessToken:  "przeterminowany",
		RefreshToken: "bez-znaczenia",
	}))

	state := session.Status(ctx, sessionID)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.False(t, store.IsAuthenticated(ctx, sessionID))
}

func TestSessionRegisterStoresTokens(t *testing.T) {
	session, store := newTestSession(t)
	ctx := context.Background()

	sessionID, user, err := session.Register(ctx, domain.RegisterRequest{
		Email:     "nowa@apteka.pl",
		Password:  "tajnehaslo",
		Password2: "tajnehaslo",
		FirstName: "Anna",
		LastName:  "Nowak",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	// brak account_type w formularzu oznacza konto apteczne
	assert.Equal(t, domain.AccountTypePharmacy, user.AccountType)
	assert.True(t, store.IsAuthenticated(ctx, sessionID))
}

func TestSessionUpdateUser(t *testing.T) {
	session, _ := newTestSession(t)
	ctx := context.Background()

	sessionID, _, err := session.Login(ctx, domain.LoginRequest{
		Email:    "jan@apteka.pl",
		Password: "tajnehaslo",
	})
	require.NoError(t, err)

	newName := "Janusz"
	user, err := session.UpdateUser(ctx, sessionID, domain.UpdateUserDTO{FirstName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Janusz", user.FirstName)
}
