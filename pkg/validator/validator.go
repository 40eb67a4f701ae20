package validator

import (
	"regexp"
	"unicode"

	"pharmaradar/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= 6
}

func ValidateNamePart(name string) bool {
	if len([]rune(name)) < 2 {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != '-' && r != ' ' && r != '\'' {
			return false
		}
	}

	return true
}

// ValidateRegisterForm liczy komunikaty per pole, nigdy nie rzuca - błędy
// walidacji formularza to stan, nie wyjątek.
func ValidateRegisterForm(dto domain.RegisterRequest) map[string]string {
	fields := map[string]string{}

	if !ValidateEmail(dto.Email) {
		fields["email"] = "Niepoprawny adres e-mail"
	}
	if !ValidatePassword(dto.Password) {
		fields["password"] = "Hasło musi mieć co najmniej 6 znaków"
	}
	if dto.Password != dto.Password2 {
		fields["password2"] = "Hasła nie są identyczne"
	}
	if !ValidateNamePart(dto.FirstName) {
		fields["first_name"] = "Podaj poprawne imię"
	}
	if !ValidateNamePart(dto.LastName) {
		fields["last_name"] = "Podaj poprawne nazwisko"
	}

	return fields
}

// ValidateLoginForm jak wyżej, dla formularza logowania.
func ValidateLoginForm(dto domain.LoginRequest) map[string]string {
	fields := map[string]string{}

	if !ValidateEmail(dto.Email) {
		fields["email"] = "Niepoprawny adres e-mail"
	}
	if dto.Password == "" {
		fields["password"] = "Hasło jest wymagane"
	}

	return fields
}
