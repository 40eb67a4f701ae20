package upstream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessagePriority(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "message z serwera ma pierwszeństwo",
			err:  &APIError{StatusCode: 400, Message: "Złe żądanie", Detail: "szczegóły"},
			want: "Złe żądanie",
		},
		{
			name: "detail gdy brak message",
			err:  &APIError{StatusCode: 400, Detail: "Token jest nieważny"},
			want: "Token jest nieważny",
		},
		{
			name: "odpowiedź błędu bez treści",
			err:  &APIError{StatusCode: 500},
			want: "Wystąpił błąd podczas komunikacji z serwerem",
		},
		{
			name: "brak odpowiedzi z serwera",
			err:  &APIError{NoResponse: true, Err: errors.New("connection refused")},
			want: "Nie można połączyć się z serwerem. Sprawdź połączenie internetowe.",
		},
		{
			name: "błąd transportu po stronie klienta",
			err:  &APIError{Err: errors.New("unsupported protocol scheme")},
			want: "unsupported protocol scheme",
		},
		{
			name: "pusty APIError",
			err:  &APIError{},
			want: "Wystąpił nieoczekiwany błąd",
		},
		{
			name: "zwykły błąd",
			err:  errors.New("coś poszło nie tak"),
			want: "coś poszło nie tak",
		},
		{
			name: "nil",
			err:  nil,
			want: "Wystąpił nieznany błąd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorMessage(tt.err))
		})
	}
}

type listItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestUnmarshalListShapes(t *testing.T) {
	t.Run("goła tablica", func(t *testing.T) {
		items, err := UnmarshalList[listItem]([]byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`))
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(2), items[1].ID)
	})

	t.Run("koperta paginacji", func(t *testing.T) {
		items, err := UnmarshalList[listItem]([]byte(`{"count":1,"results":[{"id":3,"name":"c"}]}`))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "c", items[0].Name)
	})

	t.Run("pojedynczy obiekt opakowany w tablicę", func(t *testing.T) {
		items, err := UnmarshalList[listItem]([]byte(`{"id":4,"name":"d"}`))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(4), items[0].ID)
	})

	t.Run("pusta odpowiedź", func(t *testing.T) {
		items, err := UnmarshalList[listItem](nil)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
