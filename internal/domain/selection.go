package domain

import "sort"

// SelectionState — состояние навигации одного экрана по каталогу:
// какая книга выбрана и какие главы раскрыты. Живет только пока жив экран.
type SelectionState struct {
	selectedBookID string
	expanded       map[string]struct{}
}

func NewSelectionState() *SelectionState {
	return &SelectionState{
		expanded: make(map[string]struct{}),
	}
}

// SelectBook выбирает книгу и безусловно сбрасывает раскрытые главы.
// Повторный выбор той же книги тоже сбрасывает — так ведет себя приложение,
// не "оптимизируем".
func (s *SelectionState) SelectBook(bookID string) {
	s.selectedBookID = bookID
	s.expanded = make(map[string]struct{})
}

// DeselectBook возвращает экран к списку книг.
func (s *SelectionState) DeselectBook() {
	s.selectedBookID = ""
	s.expanded = make(map[string]struct{})
}

// ToggleChapter переключает раскрытие главы. Пока книга не выбрана — no-op.
func (s *SelectionState) ToggleChapter(chapterID string) {
	if s.selectedBookID == "" {
		return
	}
	if _, ok := s.expanded[chapterID]; ok {
		delete(s.expanded, chapterID)
	} else {
		s.expanded[chapterID] = struct{}{}
	}
}

// SelectedBookID возвращает id выбранной книги, ok == false в режиме browsing.
func (s *SelectionState) SelectedBookID() (string, bool) {
	return s.selectedBookID, s.selectedBookID != ""
}

func (s *SelectionState) IsExpanded(chapterID string) bool {
	_, ok := s.expanded[chapterID]
	return ok
}

// ExpandedChapterIDs возвращает отсортированную копию множества раскрытых глав.
func (s *SelectionState) ExpandedChapterIDs() []string {
	ids := make([]string, 0, len(s.expanded))
	for id := range s.expanded {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ChapterRow — строка "плоского" списка глав выбранной книги
// (вариант экрана, где главы отрисовываются отдельным списком с флагом).
type ChapterRow struct {
	Chapter  Chapter `json:"chapter"`
	Expanded bool    `json:"expanded"`
}

// ChapterRows строит плоский список глав книги с флагами раскрытия.
func (s *SelectionState) ChapterRows(book *Book) []ChapterRow {
	if book == nil {
		return nil
	}
	rows := make([]ChapterRow, 0, len(book.Chapters))
	for _, ch := range book.Chapters {
		rows = append(rows, ChapterRow{Chapter: ch, Expanded: s.IsExpanded(ch.ID)})
	}
	return rows
}
