package repository

import (
	"context"

	"learningapp/internal/domain"
)

// CatalogRepository — read-only каталог книг поверх инжектированного среза.
// Контракт тот же, что был бы у репозитория над БД: упорядоченный список
// и поиск по id, так что реальный бэкенд можно подставить не трогая usecase-ы.
type CatalogRepository struct {
	books []domain.Book
	byID  map[string]int
}

func NewCatalogRepository(books []domain.Book) *CatalogRepository {
	byID := make(map[string]int, len(books))
	for i, b := range books {
		byID[b.ID] = i
	}
	return &CatalogRepository{books: books, byID: byID}
}

// ListBooks возвращает книги в авторском порядке.
func (r *CatalogRepository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return r.books, nil
}

func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	return &r.books[i], nil
}
