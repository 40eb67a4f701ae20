package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError opisuje nieudane żądanie do backendu: odpowiedź ze statusem
// błędu, brak odpowiedzi albo błąd po stronie klienta HTTP.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
	NoResponse bool
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend odpowiedział statusem %d", e.StatusCode)
	}
	if e.NoResponse {
		return "brak odpowiedzi z serwera"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "nieznany błąd żądania"
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrorMessage wyciąga z błędu komunikat nadający się do pokazania
// użytkownikowi, w kolejności: message z serwera, detail z serwera,
// stały komunikat o braku odpowiedzi, treść błędu transportu,
// ogólny komunikat awaryjny.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode > 0 {
			if apiErr.Message != "" {
				return apiErr.Message
			}
			if apiErr.Detail != "" {
				return apiErr.Detail
			}
			return "Wystąpił błąd podczas komunikacji z serwerem"
		}

		if apiErr.NoResponse {
			return "Nie można połączyć się z serwerem. Sprawdź połączenie internetowe."
		}

		if apiErr.Err != nil {
			return apiErr.Err.Error()
		}

		return "Wystąpił nieoczekiwany błąd"
	}

	if err != nil {
		return err.Error()
	}

	return "Wystąpił nieznany błąd"
}

// UnmarshalList normalizuje trzy możliwe kształty odpowiedzi listowej:
// gołą tablicę, kopertę paginacji {results: [...]} i pojedynczy obiekt.
func UnmarshalList[T any](data []byte) ([]T, error) {
	if len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, nil
	}

	var single T
	if err := json.Unmarshal(data, &single); err == nil {
		return []T{single}, nil
	}

	return []T{}, nil
}
