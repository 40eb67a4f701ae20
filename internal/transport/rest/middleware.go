package rest

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"pharmaradar/internal/domain"
)

const (
	sessionIDCtx = "session_id"
	userCtx      = "user"

	loginRoute = "/login"
	mainRoute  = "/"
)

type sessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id"`
}

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := h.logger.With(
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)

		if status >= 500 {
			logger.Error("błąd serwera")
		} else if status >= 400 {
			logger.Warn("błąd klienta")
		} else {
			logger.Info("żądanie obsłużone")
		}
	}
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Content-Length, Accept-Encoding, Origin, Accept, User-Agent, X-Requested-With")

		origin := c.Request.Header.Get("Origin")
		if origin != "" && c.Request.Header.Get("Cookie") != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// sessionMiddleware odczytuje ciasteczko sesji i odkłada identyfikator
// sesji do kontekstu. Brak albo niepoprawne ciasteczko nie przerywa
// żądania - o dostępie decydują dopiero strażnicy tras.
func (h *Handler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(h.config.Session.CookieName)
		if err == nil && cookie != "" {
			if sessionID, err := h.parseSessionToken(cookie); err == nil {
				c.Set(sessionIDCtx, sessionID)
			} else {
				h.logger.Warn("niepoprawne ciasteczko sesji", zap.Error(err))
			}
		}

		c.Next()
	}
}

// authMiddleware to strażnik stron chronionych: bez zalogowania
// przekierowuje na /login, z zalogowaniem odkłada użytkownika do kontekstu.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := h.services.Session.Status(c.Request.Context(), getSessionID(c))
		if !state.IsAuthenticated {
			c.Redirect(http.StatusSeeOther, loginRoute)
			c.Abort()
			return
		}

		c.Set(userCtx, state.User)

		c.Next()
	}
}

// guestMiddleware to strażnik stron dla niezalogowanych: zalogowanego
// odsyła na stronę główną.
func (h *Handler) guestMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := h.services.Session.Status(c.Request.Context(), getSessionID(c))
		if state.IsAuthenticated {
			c.Redirect(http.StatusSeeOther, mainRoute)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (h *Handler) parseSessionToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("nieoczekiwana metoda podpisu: %v", token.Header["alg"])
		}
		return []byte(h.config.Session.SigningKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("błąd parsowania tokenu sesji: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", errors.New("niepoprawny token sesji")
	}

	return claims.SessionID, nil
}

func (h *Handler) signSessionToken(sessionID string) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.config.Session.TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(h.config.Session.SigningKey))
	if err != nil {
		return "", fmt.Errorf("błąd podpisu tokenu sesji: %w", err)
	}

	return signed, nil
}

func (h *Handler) setSessionCookie(c *gin.Context, sessionID string) error {
	signed, err := h.signSessionToken(sessionID)
	if err != nil {
		return err
	}

	c.SetCookie(h.config.Session.CookieName, signed, int(h.config.Session.TTL.Seconds()), "/", "", false, true)

	return nil
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.config.Session.CookieName, "", -1, "/", "", false, true)
}

func getSessionID(c *gin.Context) string {
	sessionID, exists := c.Get(sessionIDCtx)
	if !exists {
		return ""
	}

	id, ok := sessionID.(string)
	if !ok {
		return ""
	}

	return id
}

func getUser(c *gin.Context) (*domain.User, error) {
	user, exists := c.Get(userCtx)
	if !exists {
		return nil, errors.New("użytkownik nie jest zalogowany")
	}

	u, ok := user.(*domain.User)
	if !ok || u == nil {
		return nil, errors.New("niepoprawne dane użytkownika w kontekście")
	}

	return u, nil
}
