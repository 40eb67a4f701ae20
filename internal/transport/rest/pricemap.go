package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmaradar/internal/domain"
	"pharmaradar/internal/pricemap"
)

type priceMapView struct {
	APIKey  string               `json:"api_key"`
	Center  mapCenter            `json:"center"`
	Markers []domain.PriceMarker `json:"markers"`
}

type mapCenter struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// @Summary Mapa cen
// @Description Poglądowe metki cenowe wokół centrum. Brak klucza API map to błąd renderowania strony, nie awaria usługi.
// @Tags Strony
// @Produce json
// @Success 200 {object} priceMapView
// @Failure 503 {object} errorResponseBody "Brak klucza API dostawcy map"
// @Router /map [get]
func (h *Handler) priceMap(c *gin.Context) {
	if h.config.Maps.APIKey == "" {
		h.logger.Warn("brak klucza API dostawcy map")
		errorResponse(c, http.StatusServiceUnavailable, "Mapa jest niedostępna: brak klucza API dostawcy map")
		return
	}

	center := mapCenter{
		Lat: h.config.Maps.CenterLat,
		Lng: h.config.Maps.CenterLng,
	}

	c.JSON(http.StatusOK, priceMapView{
		APIKey:  h.config.Maps.APIKey,
		Center:  center,
		Markers: pricemap.Generate(defaultBasePrice, center.Lat, center.Lng, domain.PriceColorNeutral),
	})
}
