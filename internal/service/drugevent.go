package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"pharmaradar/internal/domain"
	"pharmaradar/internal/upstream"
)

type DrugEventServiceImpl struct {
	client *upstream.Client
	logger *zap.Logger
}

func NewDrugEventService(client *upstream.Client, logger *zap.Logger) *DrugEventServiceImpl {
	return &DrugEventServiceImpl{
		client: client,
		logger: logger,
	}
}

func (s *DrugEventServiceImpl) List(ctx context.Context, sessionID string, filter domain.DrugEventFilter) ([]domain.DrugEvent, error) {
	params := url.Values{}
	if filter.EventType != nil {
		params.Set("event_type", string(*filter.EventType))
	}
	if filter.Source != nil {
		params.Set("source", string(*filter.Source))
	}
	if filter.RecentOnly {
		params.Set("recent_only", "true")
	}

	path := "/scraper/drugs"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var raw json.RawMessage
	if err := s.client.Get(ctx, sessionID, path, &raw); err != nil {
		s.logger.Error("błąd pobierania zdarzeń lekowych", zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	events, err := upstream.UnmarshalList[domain.DrugEvent](raw)
	if err != nil {
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return events, nil
}

func (s *DrugEventServiceImpl) Recent(ctx context.Context, sessionID string, limit int) ([]domain.DrugEvent, error) {
	events, err := s.List(ctx, sessionID, domain.DrugEventFilter{RecentOnly: true})
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	return events, nil
}

func (s *DrugEventServiceImpl) GetByID(ctx context.Context, sessionID string, id int64) (*domain.DrugEvent, error) {
	var event domain.DrugEvent
	path := fmt.Sprintf("/scraper/drugs/%d", id)
	if err := s.client.Get(ctx, sessionID, path, &event); err != nil {
		s.logger.Error("błąd pobierania zdarzenia lekowego", zap.Int64("id", id), zap.Error(err))
		return nil, errors.New(upstream.ErrorMessage(err))
	}

	return &event, nil
}

// EventTypeLabel tłumaczy typ zdarzenia na etykietę widoczną na liście.
func EventTypeLabel(eventType domain.DrugEventType) string {
	switch eventType {
	case domain.DrugEventWithdrawal:
		return "WYCOFANIE"
	case domain.DrugEventSuspension:
		return "ZAWIESZENIE"
	case domain.DrugEventRegistration:
		return "NOWY LEK"
	default:
		return string(eventType)
	}
}

// EventPriority: wycofania i zawieszenia są pilne, rejestracje nie.
func EventPriority(eventType domain.DrugEventType) domain.DrugEventPriority {
	if eventType == domain.DrugEventWithdrawal || eventType == domain.DrugEventSuspension {
		return domain.DrugEventPriorityHigh
	}
	return domain.DrugEventPriorityMedium
}

func FormatEventDate(value string) string {
	return formatDatePL(value, value)
}
