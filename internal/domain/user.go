package domain

type User struct {
	ID          int64       `json:"id"`
	Email       string      `json:"email"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	AccountType AccountType `json:"account_type"`
}

type AccountType string

const (
	AccountTypeDoctor   AccountType = "doctor"
	AccountTypePharmacy AccountType = "pharmacy"
)

type UpdateUserDTO struct {
	Email       *string      `json:"email,omitempty" binding:"omitempty,email"`
	FirstName   *string      `json:"first_name,omitempty"`
	LastName    *string      `json:"last_name,omitempty"`
	AccountType *AccountType `json:"account_type,omitempty" binding:"omitempty,oneof=doctor pharmacy"`
}
