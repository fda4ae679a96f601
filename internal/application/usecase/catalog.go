package usecase

import (
	"context"

	"learningapp/internal/domain"
	"learningapp/internal/infrastructure/repository"
)

type CatalogUseCase struct {
	catalogRepo *repository.CatalogRepository
}

func NewCatalogUseCase(cr *repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: cr}
}

func (uc *CatalogUseCase) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return uc.catalogRepo.ListBooks(ctx)
}

func (uc *CatalogUseCase) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	return uc.catalogRepo.GetByID(ctx, id)
}
