package domain

type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"` // Свободный формат, например "15 min"
}

type Chapter struct {
	ID      string   `json:"id"` // Уникален внутри своей книги, не глобально
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

type Book struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	CoverColor string    `json:"cover_color"`
	Chapters   []Chapter `json:"chapters"`
}

// FindChapter возвращает главу книги по id, nil если такой нет.
func (b *Book) FindChapter(chapterID string) *Chapter {
	for i := range b.Chapters {
		if b.Chapters[i].ID == chapterID {
			return &b.Chapters[i]
		}
	}
	return nil
}
