package domain

// Credential — запись из фиксированного мок-списка пользователей.
// Пароль хранится открытым текстом: это демо без реального бэкенда.
type Credential struct {
	Email       string
	Password    string
	DisplayName string
}

type RegistrationForm struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
