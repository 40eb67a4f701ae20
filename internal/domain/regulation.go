package domain

type RegulationCategory string

const (
	RegulationCategoryEU       RegulationCategory = "UE"
	RegulationCategoryNational RegulationCategory = "Krajowe"
	RegulationCategoryGIF      RegulationCategory = "GIF"
	RegulationCategoryNFZ      RegulationCategory = "NFZ"
)

type RegulationImportance string

const (
	RegulationImportanceCritical RegulationImportance = "critical"
	RegulationImportanceHigh     RegulationImportance = "high"
	RegulationImportanceMedium   RegulationImportance = "medium"
)

// Regulation to pozycja z wykazu prac legislacyjnych, tytuł i opis
// bywają dogenerowane przez AI po stronie backendu.
type Regulation struct {
	ID               int64  `json:"id"`
	ListNumber       string `json:"nr_w_wykazie"`
	LegalBasis       string `json:"podstawa_wydania"`
	AITitle          string `json:"ai_tytul"`
	AIDescription    string `json:"ai_description"`
	PlannedIssueDate string `json:"planowany_termin_wydania_data"`
	CreatedAt        string `json:"created_at"`
}

type RegulationDetail struct {
	Regulation
	Lp                 string `json:"lp"`
	RegulationTitle    string `json:"tytul_rozporzadzenia"`
	ResignationReasons string `json:"przyczyny_rezygnacji"`
	PlannedIssue       string `json:"planowany_termin_wydania"`
	SolutionEssence    string `json:"istota_rozwiazan"`
	ResponsiblePerson  string `json:"osoba_odpowiedzialna"`
	ReasonAndNeed      string `json:"przyczyna_potrzeba"`
	UpdatedAt          string `json:"updated_at"`
}

// RegulationListOptions odpowiada parametrom zapytania /regulations/.
type RegulationListOptions struct {
	SortBy   string // "date" albo "created_at"
	SortDesc bool
	DateFrom string // YYYY-MM-DD
	DateTo   string // YYYY-MM-DD
	Limit    int
}

type RegulationView struct {
	ID            int64                `json:"id"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	Category      RegulationCategory   `json:"category"`
	Importance    RegulationImportance `json:"importance"`
	FormattedDate string               `json:"formatted_date"`
}
