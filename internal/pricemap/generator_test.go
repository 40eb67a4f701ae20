package pricemap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"pharmaradar/internal/domain"
)

const (
	centerLat = 52.2297
	centerLng = 21.0122
)

func TestGenerateMarkerCount(t *testing.T) {
	for i := 0; i < 100; i++ {
		markers := Generate(100, centerLat, centerLng, domain.PriceColorNeutral)
		assert.GreaterOrEqual(t, len(markers), 8)
		assert.LessOrEqual(t, len(markers), 15)
	}
}

func TestGenerateRedBandPrices(t *testing.T) {
	// czerwone pasmo to -70%..-30% bazy, każda metka musi być poniżej 70% bazy
	for i := 0; i < 100; i++ {
		for _, marker := range Generate(100, centerLat, centerLng, domain.PriceColorRed) {
			assert.Less(t, marker.Price, 70.0)
			assert.GreaterOrEqual(t, marker.Price, math.Floor(100*0.3)+0.99-1)
		}
	}
}

func TestGenerateGreenBandPrices(t *testing.T) {
	for i := 0; i < 100; i++ {
		for _, marker := range Generate(100, centerLat, centerLng, domain.PriceColorGreen) {
			assert.GreaterOrEqual(t, marker.Price, math.Floor(100*1.2)+0.99-1)
			assert.Less(t, marker.Price, 100*1.7+1)
		}
	}
}

func TestGenerateNeutralBandPrices(t *testing.T) {
	for i := 0; i < 100; i++ {
		for _, marker := range Generate(100, centerLat, centerLng, domain.PriceColorNeutral) {
			assert.GreaterOrEqual(t, marker.Price, math.Floor(100*0.95)+0.99-1)
			assert.Less(t, marker.Price, 100*1.05+1)
		}
	}
}

func TestGeneratePriceEndsWith99(t *testing.T) {
	for _, marker := range Generate(123.45, centerLat, centerLng, domain.PriceColorNeutral) {
		cents := marker.Price - math.Floor(marker.Price)
		assert.InDelta(t, 0.99, cents, 1e-9)
	}
}

func TestGenerateScatterRadius(t *testing.T) {
	// 1 stopień ≈ 111 km, rozrzut ma się mieścić w promieniu 10 km
	for i := 0; i < 20; i++ {
		for _, marker := range Generate(50, centerLat, centerLng, domain.PriceColorNeutral) {
			latKm := (marker.Lat - centerLat) * 111.0
			lngKm := (marker.Lng - centerLng) * 111.0 * math.Cos(centerLat*math.Pi/180)
			distance := math.Sqrt(latKm*latKm + lngKm*lngKm)
			assert.LessOrEqual(t, distance, 10.01)
		}
	}
}

func TestGenerateMarkerIDsSequential(t *testing.T) {
	markers := Generate(50, centerLat, centerLng, domain.PriceColorNeutral)
	for i, marker := range markers {
		assert.Equal(t, i+1, marker.ID)
	}
}
