package fixture

import "learningapp/internal/domain"

// Books возвращает статический каталог приложения. Порядок книг, глав и
// уроков — авторский, он же порядок отрисовки.
// Id уроков уникальны в пределах книги ("lesson1", "lesson2", ...).
func Books() []domain.Book {
	return []domain.Book{
		{
			ID:         "plant",
			Title:      "Plant Book",
			Subtitle:   "Explore various plants and their characteristics",
			CoverColor: "#dcfce7",
			Chapters: []domain.Chapter{
				{
					ID:    "chapter1",
					Title: "Chapter 1: Introduction to Plants",
					Lessons: []domain.Lesson{
						{ID: "lesson1", Title: "Lesson 1: What are Plants?", Duration: "15 min"},
						{ID: "lesson2", Title: "Lesson 2: Plant Classification", Duration: "20 min"},
						{ID: "lesson3", Title: "Lesson 3: Plant Structures", Duration: "18 min"},
					},
				},
				{
					ID:    "chapter2",
					Title: "Chapter 2: Plant Reproduction",
					Lessons: []domain.Lesson{
						{ID: "lesson4", Title: "Lesson 1: Flower Structure", Duration: "22 min"},
						{ID: "lesson5", Title: "Lesson 2: Pollination Process", Duration: "25 min"},
					},
				},
			},
		},
		{
			ID:         "animal",
			Title:      "Animal Book",
			Subtitle:   "Discover the diverse world of animals",
			CoverColor: "#dbeafe",
			Chapters: []domain.Chapter{
				{
					ID:    "chapter1",
					Title: "Chapter 1: Animal Kingdom",
					Lessons: []domain.Lesson{
						{ID: "lesson1", Title: "Lesson 1: Classification", Duration: "18 min"},
						{ID: "lesson2", Title: "Lesson 2: Habitats", Duration: "16 min"},
					},
				},
				{
					ID:    "chapter2",
					Title: "Chapter 2: Animal Behavior",
					Lessons: []domain.Lesson{
						{ID: "lesson3", Title: "Lesson 1: Migration Patterns", Duration: "20 min"},
						{ID: "lesson4", Title: "Lesson 2: Social Structures", Duration: "24 min"},
					},
				},
			},
		},
		{
			ID:         "biology",
			Title:      "Biology Book",
			Subtitle:   "Comprehensive biology fundamentals",
			CoverColor: "#fef3c7",
			Chapters: []domain.Chapter{
				{
					ID:    "chapter1",
					Title: "Chapter 1: Cell Biology",
					Lessons: []domain.Lesson{
						{ID: "lesson1", Title: "Lesson 1: Cell Structure", Duration: "25 min"},
						{ID: "lesson2", Title: "Lesson 2: Cell Division", Duration: "30 min"},
					},
				},
			},
		},
	}
}
