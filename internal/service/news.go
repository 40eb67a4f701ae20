package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"pharmaradar/internal/domain"
	"pharmaradar/internal/upstream"
)

const NoDateLabel = "Brak daty"

type NewsServiceImpl struct {
	client *upstream.Client
	logger *zap.Logger
}

func NewNewsService(client *upstream.Client, logger *zap.Logger) *NewsServiceImpl {
	return &NewsServiceImpl{
		client: client,
		logger: logger,
	}
}

func (s *NewsServiceImpl) List(ctx context.Context, sessionID string) ([]domain.News, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, sessionID, "/news/medical/", &raw); err != nil {
		s.logger.Error("błąd pobierania newsów", zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	news, err := upstream.UnmarshalList[domain.News](raw)
	if err != nil {
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return news, nil
}

func (s *NewsServiceImpl) GetByID(ctx context.Context, sessionID string, id int64) (*domain.News, error) {
	var item domain.News
	path := fmt.Sprintf("/news/medical/%d/", id)
	if err := s.client.Get(ctx, sessionID, path, &item); err != nil {
		s.logger.Error("błąd pobierania newsa", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return &item, nil
}

// NewsDisplayTitle preferuje polskie tłumaczenie, gdy jest dostępne.
func NewsDisplayTitle(news domain.News) string {
	if news.TitlePL != "" {
		return news.TitlePL
	}
	return news.Title
}

func NewsDisplayDescription(news domain.News) string {
	if news.DescriptionPL != "" {
		return news.DescriptionPL
	}
	return news.Description
}

func FormatNewsDate(value string) string {
	return formatDatePL(value, NoDateLabel)
}

// newsCategoryRules to uporządkowana lista reguł słowo-kluczowe → kategoria,
// wygrywa pierwsze dopasowanie. Kolejność grup jest częścią kontraktu.
var newsCategoryRules = []struct {
	keywords []string
	category domain.NewsCategory
}{
	{
		keywords: []string{"badania", "badanie", "kliniczne", "eksperyment"},
		category: domain.NewsCategoryResearch,
	},
	{
		keywords: []string{"przepisy", "regulacje", "ustawa", "rozporządzenie", "gif", "nfz", "ue"},
		category: domain.NewsCategoryRegulations,
	},
	{
		keywords: []string{"rynek", "cena", "cen", "dystrybucja", "sprzedaż"},
		category: domain.NewsCategoryMarket,
	},
	{
		keywords: []string{"technologia", "ai", "sztuczna", "cyfrowa", "aplikacja"},
		category: domain.NewsCategoryTechnology,
	},
}

// NewsCategory klasyfikuje newsa po słowach kluczowych w tytule i opisie.
// Gdy nic nie pasuje, domyślną kategorią jest Rynek.
func NewsCategory(news domain.News) domain.NewsCategory {
	haystack := strings.ToLower(NewsDisplayTitle(news) + " " + NewsDisplayDescription(news))

	for _, rule := range newsCategoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(haystack, keyword) {
				return rule.category
			}
		}
	}

	return domain.NewsCategoryMarket
}
