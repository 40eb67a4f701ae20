package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pharmaradar/internal/domain"
)

// @Summary Profil użytkownika
// @Tags Strony
// @Produce json
// @Success 200 {object} successResponseBody
// @Failure 401 {object} errorResponseBody "Wymagane zalogowanie"
// @Router /profile [get]
func (h *Handler) profile(c *gin.Context) {
	user, err := getUser(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	successResponse(c, http.StatusOK, gin.H{
		"user": user,
	})
}

// @Summary Aktualizacja profilu
// @Description Przekazuje zmiany do backendu i zwraca zaktualizowanego użytkownika
// @Tags Strony
// @Accept json
// @Produce json
// @Param input body domain.UpdateUserDTO true "Zmieniane pola"
// @Success 200 {object} successResponseBody
// @Failure 400 {object} errorResponseBody "Niepoprawne dane"
// @Router /profile [patch]
func (h *Handler) updateProfile(c *gin.Context) {
	var input domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("niepoprawny format danych", zap.Error(err))
		badRequestResponse(c, "niepoprawny format danych")
		return
	}

	user, err := h.services.Session.UpdateUser(c.Request.Context(), getSessionID(c), input)
	if err != nil {
		h.logger.Error("błąd aktualizacji profilu", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, gin.H{
		"user": user,
	})
}
