package domain

// PriceMarker to poglądowy punkt na mapie cen, dane są syntetyczne
// i generowane na nowo przy każdym żądaniu.
type PriceMarker struct {
	ID    int     `json:"id"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Price float64 `json:"price"`
}
