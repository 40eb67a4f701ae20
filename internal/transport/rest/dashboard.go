package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pharmaradar/internal/domain"
	"pharmaradar/internal/service"
)

const (
	recentEventsLimit   = 10
	regulationListLimit = 20
)

type dashboardView struct {
	User             *domain.User            `json:"user,omitempty"`
	Drugs            []domain.DrugView       `json:"drugs"`
	DrugsError       string                  `json:"drugs_error,omitempty"`
	Events           []domain.DrugEventView  `json:"events"`
	EventsError      string                  `json:"events_error,omitempty"`
	News             []domain.NewsView       `json:"news"`
	NewsError        string                  `json:"news_error,omitempty"`
	Regulations      []domain.RegulationView `json:"regulations"`
	RegulationsError string                  `json:"regulations_error,omitempty"`
}

// @Summary Strona główna
// @Description Zestawia listę leków, ostatnie zdarzenia lekowe, newsy i przepisy prawne. Każda sekcja niesie własny komunikat błędu, strona renderuje się częściowo.
// @Tags Strony
// @Produce json
// @Param q query string false "Filtr listy leków po nazwie"
// @Success 200 {object} dashboardView
// @Router / [get]
func (h *Handler) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := getSessionID(c)

	view := dashboardView{
		Drugs:       []domain.DrugView{},
		Events:      []domain.DrugEventView{},
		News:        []domain.NewsView{},
		Regulations: []domain.RegulationView{},
	}

	if user, err := getUser(c); err == nil {
		view.User = user
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	drugs, err := h.services.Drug.List(ctx, sessionID)
	if err != nil {
		view.DrugsError = err.Error()
	} else {
		for _, drug := range drugs {
			displayName := service.DisplayName(drug)
			if query != "" && !strings.Contains(strings.ToLower(displayName), query) {
				continue
			}

			drugView := domain.DrugView{
				ID:             drug.ID,
				DisplayName:    displayName,
				FormattedPrice: service.FormatPrice(drug.Price),
				Quantity:       drug.Quantity,
				LowStock:       service.IsLowStock(drug.Quantity),
				PriceColor:     service.ProductPriceColor(drug.ID),
			}
			if drug.ActiveSubstance != nil {
				drugView.ActiveSubstance = *drug.ActiveSubstance
			}

			view.Drugs = append(view.Drugs, drugView)
		}
	}

	events, err := h.services.DrugEvent.Recent(ctx, sessionID, recentEventsLimit)
	if err != nil {
		view.EventsError = err.Error()
	} else {
		for _, event := range events {
			eventView := domain.DrugEventView{
				ID:            event.ID,
				TypeLabel:     service.EventTypeLabel(event.EventType),
				Priority:      service.EventPriority(event.EventType),
				Source:        event.Source,
				DrugName:      event.DrugName,
				FormattedDate: service.FormatEventDate(event.PublicationDate),
			}
			if event.Description != nil {
				eventView.Description = *event.Description
			}

			view.Events = append(view.Events, eventView)
		}
	}

	news, err := h.services.News.List(ctx, sessionID)
	if err != nil {
		view.NewsError = err.Error()
	} else {
		for _, item := range news {
			view.News = append(view.News, domain.NewsView{
				ID:            item.ID,
				Title:         service.NewsDisplayTitle(item),
				Description:   service.NewsDisplayDescription(item),
				URL:           item.URL,
				Category:      service.NewsCategory(item),
				FormattedDate: service.FormatNewsDate(item.PublishedAt),
				ImageURL:      item.ImageURL,
			})
		}
	}

	regulations, err := h.services.Regulation.List(ctx, sessionID, domain.RegulationListOptions{Limit: regulationListLimit})
	if err != nil {
		view.RegulationsError = err.Error()
	} else {
		for _, regulation := range regulations {
			view.Regulations = append(view.Regulations, domain.RegulationView{
				ID:            regulation.ID,
				Title:         service.RegulationDisplayTitle(regulation),
				Description:   service.RegulationDisplayDescription(regulation),
				Category:      service.RegulationCategory(regulation.LegalBasis),
				Importance:    service.RegulationImportance(regulation.LegalBasis),
				FormattedDate: service.FormatPlannedDate(regulation.PlannedIssueDate),
			})
		}
	}

	c.JSON(http.StatusOK, view)
}
