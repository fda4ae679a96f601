package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"learningapp/internal/domain"
	"learningapp/internal/infrastructure/repository"

	"github.com/google/uuid"
)

// ScreenView — снимок состояния экрана для отдачи наружу.
type ScreenView struct {
	ScreenID           string              `json:"screen_id"`
	Mode               string              `json:"mode"` // browsing | drilldown
	SelectedBook       *domain.Book        `json:"selected_book,omitempty"`
	ExpandedChapterIDs []string            `json:"expanded_chapter_ids"`
	Chapters           []domain.ChapterRow `json:"chapters,omitempty"`
}

type screenSession struct {
	id        string
	state     *domain.SelectionState
	createdAt time.Time
}

// ScreenManager держит сессии экранов. Каждый экран владеет собственным
// независимым SelectionState — общего стора между экранами нет намеренно.
type ScreenManager struct {
	catalogRepo *repository.CatalogRepository

	mu      sync.RWMutex
	screens map[string]*screenSession
}

func NewScreenManager(cr *repository.CatalogRepository) *ScreenManager {
	return &ScreenManager{
		catalogRepo: cr,
		screens:     make(map[string]*screenSession),
	}
}

// Mount создает сессию нового экрана в режиме browsing.
func (m *ScreenManager) Mount(ctx context.Context) ScreenView {
	s := &screenSession{
		id:        uuid.New().String(),
		state:     domain.NewSelectionState(),
		createdAt: time.Now(),
	}

	m.mu.Lock()
	m.screens[s.id] = s
	m.mu.Unlock()

	return m.buildView(ctx, s)
}

// Unmount уничтожает сессию. Состояние нигде не сохраняется.
func (m *ScreenManager) Unmount(screenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.screens[screenID]; !ok {
		return domain.ErrScreenNotFound
	}
	delete(m.screens, screenID)
	return nil
}

func (m *ScreenManager) View(ctx context.Context, screenID string) (ScreenView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.screens[screenID]
	if !ok {
		return ScreenView{}, domain.ErrScreenNotFound
	}
	return m.buildView(ctx, s), nil
}

// SelectBook переводит экран в drilldown по книге. Неизвестный id книги
// молча игнорируется — экран остается как был.
func (m *ScreenManager) SelectBook(ctx context.Context, screenID, bookID string) (ScreenView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.screens[screenID]
	if !ok {
		return ScreenView{}, domain.ErrScreenNotFound
	}

	if _, err := m.catalogRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return m.buildView(ctx, s), nil
		}
		return ScreenView{}, err
	}

	s.state.SelectBook(bookID)
	return m.buildView(ctx, s), nil
}

// ToggleChapter переключает раскрытие главы выбранной книги.
// В режиме browsing и для неизвестной главы — no-op.
func (m *ScreenManager) ToggleChapter(ctx context.Context, screenID, chapterID string) (ScreenView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.screens[screenID]
	if !ok {
		return ScreenView{}, domain.ErrScreenNotFound
	}

	bookID, selected := s.state.SelectedBookID()
	if !selected {
		return m.buildView(ctx, s), nil
	}

	book, err := m.catalogRepo.GetByID(ctx, bookID)
	if err != nil {
		return m.buildView(ctx, s), nil
	}
	if book.FindChapter(chapterID) == nil {
		return m.buildView(ctx, s), nil
	}

	s.state.ToggleChapter(chapterID)
	return m.buildView(ctx, s), nil
}

// DeselectBook возвращает экран к списку книг.
func (m *ScreenManager) DeselectBook(ctx context.Context, screenID string) (ScreenView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.screens[screenID]
	if !ok {
		return ScreenView{}, domain.ErrScreenNotFound
	}

	s.state.DeselectBook()
	return m.buildView(ctx, s), nil
}

func (m *ScreenManager) buildView(ctx context.Context, s *screenSession) ScreenView {
	view := ScreenView{
		ScreenID:           s.id,
		Mode:               "browsing",
		ExpandedChapterIDs: s.state.ExpandedChapterIDs(),
	}

	bookID, selected := s.state.SelectedBookID()
	if !selected {
		return view
	}

	book, err := m.catalogRepo.GetByID(ctx, bookID)
	if err != nil {
		// Книги с таким id нет — деградируем до browsing
		return view
	}

	view.Mode = "drilldown"
	view.SelectedBook = book
	view.Chapters = s.state.ChapterRows(book)
	return view
}
