package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pharmaradar/internal/domain"
	"pharmaradar/internal/pricemap"
	"pharmaradar/internal/service"
)

// defaultBasePrice zastępuje cenę bazową mapy, gdy lek nie ma ceny.
const defaultBasePrice = 50

type drugDetailsView struct {
	Drug              domain.Drug          `json:"drug"`
	DisplayName       string               `json:"display_name"`
	FormattedPrice    string               `json:"formatted_price"`
	LowStock          bool                 `json:"low_stock"`
	PriceColor        domain.PriceColor    `json:"price_color"`
	Alternatives      []domain.DrugView    `json:"alternatives"`
	AlternativesError string               `json:"alternatives_error,omitempty"`
	PriceMarkers      []domain.PriceMarker `json:"price_markers"`
}

// @Summary Szczegóły leku
// @Description Lek, zamienniki o tej samej nazwie oraz poglądowe metki cenowe wokół centrum mapy
// @Tags Strony
// @Produce json
// @Param id path int true "Identyfikator leku"
// @Success 200 {object} drugDetailsView
// @Failure 400 {object} errorResponseBody "Niepoprawny identyfikator"
// @Failure 404 {object} errorResponseBody "Lek nie znaleziony"
// @Router /details/{id} [get]
func (h *Handler) drugDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "niepoprawny identyfikator leku")
		return
	}

	ctx := c.Request.Context()
	sessionID := getSessionID(c)

	drug, err := h.services.Drug.GetByID(ctx, sessionID, id)
	if err != nil {
		h.logger.Error("błąd pobierania szczegółów leku", zap.Int64("id", id), zap.Error(err))
		notFoundResponse(c, err.Error())
		return
	}

	displayName := service.DisplayName(*drug)
	priceColor := service.ProductPriceColor(drug.ID)

	view := drugDetailsView{
		Drug:           *drug,
		DisplayName:    displayName,
		FormattedPrice: service.FormatPrice(drug.Price),
		LowStock:       service.IsLowStock(drug.Quantity),
		PriceColor:     priceColor,
		Alternatives:   []domain.DrugView{},
	}

	alternatives, err := h.services.Drug.AlternativesBySubstance(ctx, sessionID, displayName)
	if err != nil {
		view.AlternativesError = err.Error()
	} else {
		for _, alt := range alternatives {
			if alt.ID == drug.ID {
				continue
			}
			view.Alternatives = append(view.Alternatives, domain.DrugView{
				ID:             alt.ID,
				DisplayName:    service.DisplayName(alt),
				FormattedPrice: service.FormatPrice(alt.Price),
				Quantity:       alt.Quantity,
				LowStock:       service.IsLowStock(alt.Quantity),
				PriceColor:     service.ProductPriceColor(alt.ID),
			})
		}
	}

	basePrice := float64(defaultBasePrice)
	if drug.Price != nil {
		if parsed, err := strconv.ParseFloat(*drug.Price, 64); err == nil && parsed > 0 {
			basePrice = parsed
		}
	}

	view.PriceMarkers = pricemap.Generate(basePrice, h.config.Maps.CenterLat, h.config.Maps.CenterLng, priceColor)

	c.JSON(http.StatusOK, view)
}
