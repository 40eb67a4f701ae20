package pricemap

import (
	"math"
	"math/rand"

	"pharmaradar/internal/domain"
)

const (
	minMarkers = 8
	maxMarkers = 15

	scatterRadiusKm = 10.0
	kmPerDegree     = 111.0
)

// Generate tworzy 8-15 poglądowych metek cenowych rozrzuconych w promieniu
// 10 km od środka. Pasmo wariacji ceny zależy od koloru produktu: czerwony
// to ceny od -70% do -30% bazy, zielony od +20% do +70%, neutralny ±5%.
// Wynik jest nieseedowany i za każdym wywołaniem inny - dane są wyłącznie
// dekoracyjne.
func Generate(basePrice, centerLat, centerLng float64, color domain.PriceColor) []domain.PriceMarker {
	count := rand.Intn(maxMarkers-minMarkers+1) + minMarkers
	markers := make([]domain.PriceMarker, 0, count)

	for i := 0; i < count; i++ {
		var variation float64
		switch color {
		case domain.PriceColorRed:
			variation = rand.Float64()*-0.4 - 0.3
		case domain.PriceColorGreen:
			variation = rand.Float64()*0.5 + 0.2
		default:
			variation = (rand.Float64() - 0.5) * 0.1
		}

		price := math.Floor(basePrice*(1+variation)) + 0.99

		radiusKm := rand.Float64() * scatterRadiusKm
		angle := rand.Float64() * 2 * math.Pi

		// przybliżenie: 1 stopień ≈ 111 km, długość geograficzna skalowana
		// cosinusem szerokości
		latOffset := (radiusKm / kmPerDegree) * math.Cos(angle)
		lngOffset := (radiusKm / (kmPerDegree * math.Cos(centerLat*math.Pi/180))) * math.Sin(angle)

		markers = append(markers, domain.PriceMarker{
			ID:    i + 1,
			Lat:   centerLat + latOffset,
			Lng:   centerLng + lngOffset,
			Price: price,
		})
	}

	return markers
}
