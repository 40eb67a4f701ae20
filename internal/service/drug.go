package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"pharmaradar/internal/domain"
	"pharmaradar/internal/upstream"
)

const (
	// NoNameLabel i NoPriceLabel to stałe etykiety zastępcze na listach leków.
	NoNameLabel  = "Brak nazwy"
	NoPriceLabel = "Brak ceny"

	lowStockThreshold = 5
)

type DrugServiceImpl struct {
	client *upstream.Client
	logger *zap.Logger
}

func NewDrugService(client *upstream.Client, logger *zap.Logger) *DrugServiceImpl {
	return &DrugServiceImpl{
		client: client,
		logger: logger,
	}
}

func (s *DrugServiceImpl) List(ctx context.Context, sessionID string) ([]domain.Drug, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, sessionID, "/pharmac/drugs/", &raw); err != nil {
		s.logger.Error("błąd pobierania listy leków", zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	drugs, err := upstream.UnmarshalList[domain.Drug](raw)
	if err != nil {
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return drugs, nil
}

func (s *DrugServiceImpl) GetByID(ctx context.Context, sessionID string, id int64) (*domain.Drug, error) {
	var drug domain.Drug
	path := fmt.Sprintf("/pharmac/drugs/%d/", id)
	if err := s.client.Get(ctx, sessionID, path, &drug); err != nil {
		s.logger.Error("błąd pobierania leku", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return &drug, nil
}

func (s *DrugServiceImpl) AlternativesBySubstance(ctx context.Context, sessionID, substance string) ([]domain.Drug, error) {
	var raw json.RawMessage
	body := domain.SubstanceSearchRequest{Substance: substance}
	if err := s.client.Post(ctx, sessionID, "/pharmac/search/substance/", body, &raw); err != nil {
		s.logger.Error("błąd wyszukiwania zamienników", zap.String("substance", substance), zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	drugs, err := upstream.UnmarshalList[domain.Drug](raw)
	if err != nil {
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return drugs, nil
}

// DisplayName wybiera nazwę do wyświetlenia: najpierw nazwa powszechnie
// stosowana, potem nazwa produktu, na końcu etykieta zastępcza.
func DisplayName(drug domain.Drug) string {
	if drug.CommonName != nil && *drug.CommonName != "" {
		return *drug.CommonName
	}
	if drug.ProductName != nil && *drug.ProductName != "" {
		return *drug.ProductName
	}
	return NoNameLabel
}

func IsLowStock(quantity int) bool {
	return quantity < lowStockThreshold
}

// FormatPrice odrzuca wartości wartownicze ("-1", "null", brak, nie-liczba),
// a poprawną cenę obcina do pełnych złotych i dokleja końcówkę .99.
func FormatPrice(price *string) string {
	if price == nil || *price == "" || *price == "-1" || *price == "null" {
		return NoPriceLabel
	}

	value, err := strconv.ParseFloat(*price, 64)
	if err != nil || math.IsNaN(value) {
		return NoPriceLabel
	}

	rounded := math.Floor(value) + 0.99

	return fmt.Sprintf("%.2f PLN", rounded)
}

// ProductPriceColor wyznacza pasmo cenowe leku tą samą regułą co strona
// główna: co trzeci lek dostaje kolor, naprzemiennie czerwony i zielony.
func ProductPriceColor(drugID int64) domain.PriceColor {
	index := drugID - 1
	if index%3 == 0 {
		if index%6 == 0 {
			return domain.PriceColorRed
		}
		return domain.PriceColorGreen
	}
	return domain.PriceColorNeutral
}
