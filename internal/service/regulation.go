package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pharmaradar/internal/domain"
	"pharmaradar/internal/upstream"
)

type RegulationServiceImpl struct {
	client *upstream.Client
	logger *zap.Logger
}

func NewRegulationService(client *upstream.Client, logger *zap.Logger) *RegulationServiceImpl {
	return &RegulationServiceImpl{
		client: client,
		logger: logger,
	}
}

func (s *RegulationServiceImpl) List(ctx context.Context, sessionID string, opts domain.RegulationListOptions) ([]domain.Regulation, error) {
	params := url.Values{}
	if opts.SortBy != "" {
		ordering := opts.SortBy
		if opts.SortDesc {
			ordering = "-" + ordering
		}
		params.Set("ordering", ordering)
	}
	if opts.DateFrom != "" {
		params.Set("planowany_termin_wydania_data__gte", opts.DateFrom)
	}
	if opts.DateTo != "" {
		params.Set("planowany_termin_wydania_data__lte", opts.DateTo)
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}

	path := "/regulations/"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var raw json.RawMessage
	if err := s.client.Get(ctx, sessionID, path, &raw); err != nil {
		s.logger.Error("błąd pobierania przepisów prawnych", zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	regulations, err := upstream.UnmarshalList[domain.Regulation](raw)
	if err != nil {
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return regulations, nil
}

func (s *RegulationServiceImpl) GetByID(ctx context.Context, sessionID string, id int64) (*domain.RegulationDetail, error) {
	var detail domain.RegulationDetail
	path := fmt.Sprintf("/regulations/%d/", id)
	if err := s.client.Get(ctx, sessionID, path, &detail); err != nil {
		s.logger.Error("błąd pobierania przepisu prawnego", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return &detail, nil
}

// regulationCategoryRules i regulationImportanceRules to jawne, uporządkowane
// listy (słowa kluczowe, wynik) - wygrywa pierwsze dopasowanie w podstawie
// prawnej, ostatnia pozycja bez słów kluczowych jest domyślna.
var regulationCategoryRules = []struct {
	keywords []string
	category domain.RegulationCategory
}{
	{
		keywords: []string{"ue", "unii europejskiej", "europejskiej"},
		category: domain.RegulationCategoryEU,
	},
	{
		keywords: []string{"gif", "główny inspektorat"},
		category: domain.RegulationCategoryGIF,
	},
	{
		keywords: []string{"nfz", "narodowy fundusz"},
		category: domain.RegulationCategoryNFZ,
	},
}

var regulationImportanceRules = []struct {
	keywords   []string
	importance domain.RegulationImportance
}{
	{
		keywords:   []string{"ustawa", "rozporządzenie", "dyrektywa"},
		importance: domain.RegulationImportanceCritical,
	},
	{
		keywords:   []string{"zarządzenie", "komunikat"},
		importance: domain.RegulationImportanceHigh,
	},
}

// RegulationCategory klasyfikuje przepis po podstawie prawnej,
// domyślnie Krajowe.
func RegulationCategory(legalBasis string) domain.RegulationCategory {
	basis := strings.ToLower(legalBasis)

	for _, rule := range regulationCategoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(basis, keyword) {
				return rule.category
			}
		}
	}

	return domain.RegulationCategoryNational
}

// RegulationImportance ocenia wagę przepisu po podstawie prawnej,
// domyślnie medium.
func RegulationImportance(legalBasis string) domain.RegulationImportance {
	basis := strings.ToLower(legalBasis)

	for _, rule := range regulationImportanceRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(basis, keyword) {
				return rule.importance
			}
		}
	}

	return domain.RegulationImportanceMedium
}

func RegulationDisplayTitle(regulation domain.Regulation) string {
	if regulation.AITitle != "" {
		return regulation.AITitle
	}
	return regulation.ListNumber
}

func RegulationDisplayDescription(regulation domain.Regulation) string {
	if regulation.AIDescription != "" {
		return regulation.AIDescription
	}
	return regulation.LegalBasis
}

// FormatRegulationDate wraca do oryginalnego łańcucha, gdy data
// nie daje się sparsować.
func FormatRegulationDate(value string) string {
	return formatDatePL(value, value)
}

func FormatPlannedDate(value string) string {
	return formatDateLongPL(value, value)
}
