package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pharmaradar/config"
	"pharmaradar/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

// InitRoutes odwzorowuje trasy aplikacji przeglądarkowej: /login i /register
// tylko dla niezalogowanych, strona główna, szczegóły leku, profil i mapa
// za strażnikiem zalogowania, wszystko inne wraca na stronę główną.
func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())
	router.Use(h.corsMiddleware())
	router.Use(h.sessionMiddleware())

	router.GET("/health", h.health)

	guest := router.Group("/", h.guestMiddleware())
	{
		guest.GET("/login", h.loginPage)
		guest.POST("/login", h.login)
		guest.GET("/register", h.registerPage)
		guest.POST("/register", h.register)
	}

	authorized := router.Group("/", h.authMiddleware())
	{
		authorized.GET("/", h.dashboard)
		authorized.GET("/details/:id", h.drugDetails)
		authorized.GET("/profile", h.profile)
		authorized.PATCH("/profile", h.updateProfile)
		authorized.GET("/map", h.priceMap)
	}

	router.POST("/logout", h.logout)

	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, mainRoute)
	})
}

// @Summary Stan usługi
// @Tags Operacyjne
// @Produce json
// @Success 200 {object} successResponseBody
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	successResponse(c, http.StatusOK, gin.H{
		"name":    h.config.Name,
		"version": h.config.Version,
	})
}
