package api

import "github.com/Thanaphat465415241003/book-tracker-app/internal/core/entity"

// FilterByStatus возвращает книги с заданным статусом
func FilterByStatus(books []entity.Book, status entity.BookStatus) []entity.Book {
	filtered := []entity.Book{}
	for _, b := range books {
		if b.Status == status {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// Progress прогресс по цели чтения
type Progress struct {
	Finished int
	Goal     int
	Percent  int
}

// GoalProgress считает долю прочитанных книг от цели.
// Нулевая (или не заданная) цель дает нулевой процент; процент
// ограничен сверху сотней.
func GoalProgress(books []entity.Book, goal int) Progress {
	finished := len(FilterByStatus(books, entity.StatusFinished))
	p := Progress{Finished: finished, Goal: goal}
	if goal <= 0 {
		return p
	}
	p.Percent = finished * 100 / goal
	if p.Percent > 100 {
		p.Percent = 100
	}
	return p
}

// StatusLabel человекочитаемая подпись статуса; перечисление закрыто,
// для неизвестного значения возвращается пустая строка
func StatusLabel(s entity.BookStatus) string {
	switch s {
	case entity.StatusNotRead:
		return "Not read"
	case entity.StatusReading:
		return "Reading"
	case entity.StatusFinished:
		return "Finished"
	}
	return ""
}
