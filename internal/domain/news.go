package domain

type NewsCategory string

const (
	NewsCategoryResearch    NewsCategory = "Badania"
	NewsCategoryRegulations NewsCategory = "Przepisy"
	NewsCategoryMarket      NewsCategory = "Rynek"
	NewsCategoryTechnology  NewsCategory = "Technologia"
)

// News to artykuł medyczny, tytuł i opis przychodzą w oryginale
// oraz w tłumaczeniu na polski, jeśli translator zdążył.
type News struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	PublishedAt   string `json:"published_at"`
	ImageURL      string `json:"image_url"`
	TitlePL       string `json:"title_pl"`
	DescriptionPL string `json:"description_pl"`
	IsTranslated  bool   `json:"is_translated"`
	CreatedAt     string `json:"created_at"`
}

type NewsView struct {
	ID            int64        `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	URL           string       `json:"url"`
	Category      NewsCategory `json:"category"`
	FormattedDate string       `json:"formatted_date"`
	ImageURL      string       `json:"image_url,omitempty"`
}
