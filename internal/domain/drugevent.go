package domain

type DrugEventType string

const (
	DrugEventWithdrawal   DrugEventType = "WITHDRAWAL"
	DrugEventSuspension   DrugEventType = "SUSPENSION"
	DrugEventRegistration DrugEventType = "REGISTRATION"
)

type DrugEventSource string

const (
	DrugEventSourceGIF  DrugEventSource = "GIF"
	DrugEventSourceURPL DrugEventSource = "URPL"
)

type DrugEventPriority string

const (
	DrugEventPriorityHigh   DrugEventPriority = "high"
	DrugEventPriorityMedium DrugEventPriority = "medium"
	DrugEventPriorityLow    DrugEventPriority = "low"
)

// DrugEvent to decyzja GIF/URPL o wycofaniu, zawieszeniu albo rejestracji leku.
type DrugEvent struct {
	ID                           int64           `json:"id"`
	EventType                    DrugEventType   `json:"event_type"`
	Source                       DrugEventSource `json:"source"`
	PublicationDate              string          `json:"publication_date"`
	DecisionNumber               *string         `json:"decision_number"`
	DrugName                     string          `json:"drug_name"`
	DrugStrength                 *string         `json:"drug_strength"`
	DrugForm                     *string         `json:"drug_form"`
	MarketingAuthorisationHolder string          `json:"marketing_authorisation_holder"`
	BatchNumber                  *string         `json:"batch_number"`
	ExpiryDate                   *string         `json:"expiry_date"`
	Description                  *string         `json:"description"`
	CreatedAt                    string          `json:"created_at"`
	UpdatedAt                    string          `json:"updated_at"`
}

// DrugEventFilter odpowiada parametrom zapytania /scraper/drugs.
type DrugEventFilter struct {
	EventType  *DrugEventType
	Source     *DrugEventSource
	RecentOnly bool
}

type DrugEventView struct {
	ID            int64             `json:"id"`
	TypeLabel     string            `json:"type_label"`
	Priority      DrugEventPriority `json:"priority"`
	Source        DrugEventSource   `json:"source"`
	DrugName      string            `json:"drug_name"`
	FormattedDate string            `json:"formatted_date"`
	Description   string            `json:"description,omitempty"`
}
