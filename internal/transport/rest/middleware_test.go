package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharmaradar/config"
	"pharmaradar/internal/domain"
	"pharmaradar/internal/service"
	"pharmaradar/internal/tokenstore"
	"pharmaradar/internal/upstream"
)

const testAccessToken = "access-abc"

// fakeBackend wystawia minimalny backend apteczny: logowanie i dane
// bieżącego użytkownika.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body domain.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body.Email != "jan@apteka.pl" || body.Password != "tajnehaslo" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Niepoprawne dane logowania"})
			return
		}

		json.NewEncoder(w).Encode(domain.LoginResponse{
			AccessToken:  testAccessToken,
			RefreshToken: "refresh-abc",
			User:         domain.User{ID: 1, Email: body.Email, AccountType: domain.AccountTypePharmacy},
		})
	})

	mux.HandleFunc("GET /auth/user/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testAccessToken {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Token jest nieważny"})
			return
		}

		json.NewEncoder(w).Encode(domain.User{ID: 1, Email: "jan@apteka.pl", AccountType: domain.AccountTypePharmacy})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestHandler(t *testing.T) (*Handler, *gin.Engine, *tokenstore.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := fakeBackend(t)
	store := tokenstore.NewMemoryStore(time.Hour)
	logger := zap.NewNop()

	cfg := &config.Config{
		Name:    "pharmaradar",
		Version: "test",
		Upstream: config.UpstreamConfig{
			BaseURL: backend.URL,
			Timeout: 5 * time.Second,
		},
		Session: config.SessionConfig{
			SigningKey: "klucz-testowy",
			CookieName: "pharmaradar_session",
			TTL:        time.Hour,
		},
	}

	client := upstream.NewClient(cfg.Upstream, store, logger)
	services := service.NewServices(service.Deps{
		Client: client,
		Store:  store,
		Logger: logger,
		Config: cfg,
	})

	handler := NewHandler(services, logger, cfg)

	router := gin.New()
	handler.InitRoutes(router)

	return handler, router, store
}

// sessionCookie wystawia podpisane ciasteczko dla istniejącej sesji.
func sessionCookie(t *testing.T, h *Handler, store *tokenstore.MemoryStore) *http.Cookie {
	t.Helper()

	sessionID := "sesja-testowa"
	require.NoError(t, store.SetTokens(context.Background(), sessionID, domain.Tokens{
		AccessToken:  testAccessToken,
		RefreshToken: "refresh-abc",
	}))

	signed, err := h.signSessionToken(sessionID)
	require.NoError(t, err)

	return &http.Cookie{Name: h.config.Session.CookieName, Value: signed}
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	_, router, _ := newTestHandler(t)

	for _, path := range []string{"/", "/profile", "/details/1", "/map"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestGuardRedirectsAuthenticatedFromGuestPages(t *testing.T) {
	handler, router, store := newTestHandler(t)
	cookie := sessionCookie(t, handler, store)

	for _, path := range []string{"/login", "/register"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}
}

func TestGuardAllowsAnonymousGuestPages(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardAllowsAuthenticatedProfile(t *testing.T) {
	handler, router, store := newTestHandler(t)
	cookie := sessionCookie(t, handler, store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jan@apteka.pl")
}

func TestGuardInvalidCookieTreatedAsAnonymous(t *testing.T) {
	handler, router, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: handler.config.Session.CookieName, Value: "nie-jwt"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	_, router, _ := newTestHandler(t)

	// logowanie wystawia ciasteczko sesji
	w := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"jan@apteka.pl","password":"tajnehaslo"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "pharmaradar_session" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)

	// z ciasteczkiem strona chroniona jest dostępna
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// wylogowanie unieważnia sesję po stronie serwera
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// stare ciasteczko nie daje już dostępu
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLoginBadCredentials(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	body := strings.NewReader(`{"email":"jan@apteka.pl","password":"zle"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Niepoprawne dane logowania")
	assert.Empty(t, w.Result().Cookies())
}

func TestNoRouteRedirectsToMain(t *testing.T) {
	_, router, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nie-ma-takiej-strony", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}
