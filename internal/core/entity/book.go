package entity

import "time"

// BookStatus статус чтения книги. Закрытое перечисление —
// любые другие значения отклоняются при валидации.
type BookStatus string

const (
	StatusNotRead  BookStatus = "not_read"
	StatusReading  BookStatus = "reading"
	StatusFinished BookStatus = "finished"
)

// Valid сообщает, входит ли значение в перечисление
func (s BookStatus) Valid() bool {
	switch s {
	case StatusNotRead, StatusReading, StatusFinished:
		return true
	}
	return false
}

// Book представляет книгу в личной библиотеке пользователя
type Book struct {
	ID        string     `json:"id" db:"id"`
	UserID    string     `json:"userId" db:"user_id"` // владелец; назначается при создании и не меняется
	Title     string     `json:"title" db:"title"`
	Author    string     `json:"author" db:"author"`
	Status    BookStatus `json:"status" db:"status"`
	Publisher string     `json:"publisher" db:"publisher"`
	Category  string     `json:"category" db:"category"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// CreateBookRequest тело запроса на добавление книги
type CreateBookRequest struct {
	Title     string     `json:"title" example:"Dune"`
	Author    string     `json:"author" example:"Frank Herbert"`
	Status    BookStatus `json:"status,omitempty" example:"not_read"`
	Publisher string     `json:"publisher,omitempty"`
	Category  string     `json:"category,omitempty"`
}

// BookPatch частичное обновление книги: применяются только явно
// переданные ключи (та же семантика, что и у ProfilePatch)
type BookPatch struct {
	Title     *string     `json:"title"`
	Author    *string     `json:"author"`
	Status    *BookStatus `json:"status"`
	Publisher *string     `json:"publisher"`
	Category  *string     `json:"category"`
}

// Changes возвращает карту «колонка -> значение» только для явно переданных полей
func (p BookPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Author != nil {
		changes["author"] = *p.Author
	}
	if p.Status != nil {
		changes["status"] = string(*p.Status)
	}
	if p.Publisher != nil {
		changes["publisher"] = *p.Publisher
	}
	if p.Category != nil {
		changes["category"] = *p.Category
	}
	return changes
}
