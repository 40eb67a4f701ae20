package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pharmaradar/internal/domain"
)

func TestNewsDisplayTitle(t *testing.T) {
	withPL := domain.News{Title: "New drug approved", TitlePL: "Nowy lek dopuszczony"}
	assert.Equal(t, "Nowy lek dopuszczony", NewsDisplayTitle(withPL))

	withoutPL := domain.News{Title: "New drug approved"}
	assert.Equal(t, "New drug approved", NewsDisplayTitle(withoutPL))
}

func TestNewsDisplayDescription(t *testing.T) {
	withPL := domain.News{Description: "desc", DescriptionPL: "opis"}
	assert.Equal(t, "opis", NewsDisplayDescription(withPL))

	withoutPL := domain.News{Description: "desc"}
	assert.Equal(t, "desc", NewsDisplayDescription(withoutPL))
}

func TestNewsCategory(t *testing.T) {
	tests := []struct {
		name string
		news domain.News
		want domain.NewsCategory
	}{
		{
			name: "badania kliniczne",
			news: domain.News{TitlePL: "Nowe badania kliniczne nad szczepionką"},
			want: domain.NewsCategoryResearch,
		},
		{
			name: "przepisy w opisie",
			news: domain.News{TitlePL: "Zmiany dla aptek", DescriptionPL: "Nowe regulacje wchodzą w życie"},
			want: domain.NewsCategoryRegulations,
		},
		{
			name: "rynek i ceny",
			news: domain.News{TitlePL: "Rynek apteczny rośnie"},
			want: domain.NewsCategoryMarket,
		},
		{
			name: "technologia",
			news: domain.News{TitlePL: "Cyfrowa rewolucja w farmacji"},
			want: domain.NewsCategoryTechnology,
		},
		{
			name: "domyślnie rynek",
			news: domain.News{TitlePL: "Spotkanie zarządu firmy"},
			want: domain.NewsCategoryMarket,
		},
		{
			name: "badania wygrywają z rynkiem przy remisie",
			news: domain.News{TitlePL: "Badania pokazują wzrost cen na rynku"},
			want: domain.NewsCategoryResearch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewsCategory(tt.news))
		})
	}
}

func TestFormatNewsDate(t *testing.T) {
	assert.Equal(t, "15.03.2026", FormatNewsDate("2026-03-15T10:30:00Z"))
	assert.Equal(t, "15.03.2026", FormatNewsDate("2026-03-15"))
	assert.Equal(t, "Brak daty", FormatNewsDate("nie-data"))
	assert.Equal(t, "Brak daty", FormatNewsDate(""))
}
