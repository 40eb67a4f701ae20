package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pharmaradar/internal/domain"
	"pharmaradar/pkg/validator"
)

// @Summary Strona logowania
// @Description Widok formularza logowania, dostępny tylko dla niezalogowanych
// @Tags Autoryzacja
// @Produce json
// @Success 200 {object} successResponseBody
// @Router /login [get]
func (h *Handler) loginPage(c *gin.Context) {
	successResponse(c, http.StatusOK, gin.H{
		"page":   "login",
		"fields": []string{"email", "password"},
	})
}

// @Summary Logowanie
// @Description Loguje użytkownika w backendzie aptecznym i zakłada sesję
// @Tags Autoryzacja
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Dane logowania"
// @Success 200 {object} successResponseBody
// @Failure 400 {object} errorResponseBody "Błędy walidacji formularza"
// @Failure 401 {object} errorResponseBody "Niepoprawne dane logowania"
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var input domain.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("niepoprawny format danych", zap.Error(err))
		badRequestResponse(c, "niepoprawny format danych")
		return
	}

	if fields := validator.ValidateLoginForm(input); len(fields) > 0 {
		validationErrorResponse(c, fields)
		return
	}

	sessionID, user, err := h.services.Session.Login(c.Request.Context(), input)
	if err != nil {
		h.logger.Warn("nieudane logowanie", zap.String("email", input.Email), zap.Error(err))
		errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	if err := h.setSessionCookie(c, sessionID); err != nil {
		h.logger.Error("błąd zakładania sesji", zap.Error(err))
		internalServerErrorResponse(c, "nie udało się założyć sesji")
		return
	}

	successResponse(c, http.StatusOK, gin.H{
		"user": user,
	})
}

// @Summary Strona rejestracji
// @Description Widok formularza rejestracji, dostępny tylko dla niezalogowanych
// @Tags Autoryzacja
// @Produce json
// @Success 200 {object} successResponseBody
// @Router /register [get]
func (h *Handler) registerPage(c *gin.Context) {
	successResponse(c, http.StatusOK, gin.H{
		"page":          "register",
		"fields":        []string{"email", "password", "password2", "first_name", "last_name", "account_type"},
		"account_types": []domain.AccountType{domain.AccountTypeDoctor, domain.AccountTypePharmacy},
	})
}

// @Summary Rejestracja
// @Description Rejestruje konto w backendzie aptecznym i zakłada sesję
// @Tags Autoryzacja
// @Accept json
// @Produce json
// @Param input body domain.RegisterRequest true "Dane rejestracji"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody "Błędy walidacji formularza"
// @Router /register [post]
func (h *Handler) register(c *gin.Context) {
	var input domain.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("niepoprawny format danych", zap.Error(err))
		badRequestResponse(c, "niepoprawny format danych")
		return
	}

	if fields := validator.ValidateRegisterForm(input); len(fields) > 0 {
		validationErrorResponse(c, fields)
		return
	}

	sessionID, user, err := h.services.Session.Register(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("nieudana rejestracja", zap.String("email", input.Email), zap.Error(err))
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.setSessionCookie(c, sessionID); err != nil {
		h.logger.Error("błąd zakładania sesji", zap.Error(err))
		internalServerErrorResponse(c, "nie udało się założyć sesji")
		return
	}

	successResponse(c, http.StatusCreated, gin.H{
		"user": user,
	})
}

// @Summary Wylogowanie
// @Description Czyści tokeny sesji i ciasteczko, zawsze kończy się powodzeniem
// @Tags Autoryzacja
// @Produce json
// @Success 200 {object} successResponseBody
// @Router /logout [post]
func (h *Handler) logout(c *gin.Context) {
	if sessionID := getSessionID(c); sessionID != "" {
		if err := h.services.Session.Logout(c.Request.Context(), sessionID); err != nil {
			h.logger.Error("błąd czyszczenia sesji", zap.Error(err))
		}
	}

	h.clearSessionCookie(c)

	messageResponse(c, http.StatusOK, "wylogowano")
}
