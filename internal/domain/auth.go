package domain

type Tokens struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// SessionState odwzorowuje bieżący stan zalogowania przeglądarki.
type SessionState struct {
	IsAuthenticated bool  `json:"is_authenticated"`
	User            *User `json:"user,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email       string      `json:"email" binding:"required,email"`
	Password    string      `json:"password" binding:"required,min=6"`
	Password2   string      `json:"password2" binding:"required,eqfield=Password"`
	FirstName   string      `json:"first_name" binding:"required"`
	LastName    string      `json:"last_name" binding:"required"`
	AccountType AccountType `json:"account_type" binding:"omitempty,oneof=doctor pharmacy"`
}

// LoginResponse to odpowiedź backendu na /auth/login.
type LoginResponse struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	User         User   `json:"user"`
}

// RegisterResponse to odpowiedź backendu na /auth/register.
type RegisterResponse struct {
	User    User   `json:"user"`
	Tokens  Tokens `json:"tokens"`
	Message string `json:"message"`
}
