package repository

import (
	"context"

	"learningapp/internal/domain"
)

// CredentialRepository — фиксированный список мок-учеток.
type CredentialRepository struct {
	creds []domain.Credential
}

func NewCredentialRepository(creds []domain.Credential) *CredentialRepository {
	return &CredentialRepository{creds: creds}
}

// FindByLogin сканирует список по порядку, сравнение точное и
// регистрозависимое. Побеждает первый матч.
func (r *CredentialRepository) FindByLogin(ctx context.Context, email, password string) (*domain.Credential, error) {
	for i := range r.creds {
		if r.creds[i].Email == email && r.creds[i].Password == password {
			return &r.creds[i], nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}
