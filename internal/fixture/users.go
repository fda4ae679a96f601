package fixture

import "learningapp/internal/domain"

// MockUsers — фиксированный список учеток для мок-логина.
// Проверка идет точным сравнением строк, первый матч по списку выигрывает.
func MockUsers() []domain.Credential {
	return []domain.Credential{
		{Email: "test@example.com", Password: "password123", DisplayName: "John Doe"},
		{Email: "user@demo.com", Password: "123456", DisplayName: "Jane Smith"},
	}
}
