package domain

// Drug odwzorowuje rekord leku z rejestru URPL, pola przychodzą z backendu
// w oryginalnym polskim nazewnictwie rejestru.
type Drug struct {
	ID                  int64   `json:"id"`
	ProductName         *string `json:"nazwa_produktu_leczniczego"`
	CommonName          *string `json:"nazwa_powszechnie_stosowana"`
	AdministrationRoute *string `json:"droga_podania_gatunek_tkanka_okres_karencji"`
	Strength            *string `json:"moc"`
	ActiveSubstance     *string `json:"substancja_czynna"`
	LicenseNumber       *string `json:"numer_pozwolenia"`
	ResponsibleEntity   *string `json:"podmiot_odpowiedzialny"`
	Manufacturer        *string `json:"nazwa_wytw_rcy"`
	Price               *string `json:"cena"`
	Quantity            int     `json:"ilosc"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type SubstanceSearchRequest struct {
	Substance string `json:"substance" binding:"required"`
}

// PriceColor steruje pasmem wariacji cen na mapie poglądowej.
type PriceColor string

const (
	PriceColorRed     PriceColor = "red"
	PriceColorGreen   PriceColor = "green"
	PriceColorNeutral PriceColor = "neutral"
)

// DrugView to model leku przygotowany pod listę na stronie głównej.
type DrugView struct {
	ID              int64      `json:"id"`
	DisplayName     string     `json:"display_name"`
	ActiveSubstance string     `json:"active_substance,omitempty"`
	FormattedPrice  string     `json:"formatted_price"`
	Quantity        int        `json:"quantity"`
	LowStock        bool       `json:"low_stock"`
	PriceColor      PriceColor `json:"price_color"`
}
