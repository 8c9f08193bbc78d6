package entity

import "time"

// User представляет модель пользователя системы
type User struct {
	ID            string    `json:"id" db:"id" example:"b6f1c9e2-5a1d-4f3a-9c0e-2d7b8a4f6e10"`
	Email         string    `json:"email" db:"email" example:"user@example.com"`
	PasswordHash  string    `json:"-" db:"password_hash"` // Это поле не будет включено в JSON
	Name          string    `json:"name,omitempty" db:"name"`
	Phone         string    `json:"phone,omitempty" db:"phone"`
	Bio           string    `json:"bio,omitempty" db:"bio"`
	BirthDate     string    `json:"birthDate,omitempty" db:"birth_date"`
	ReadingGoal   int       `json:"readingGoal" db:"reading_goal"`
	FavoriteGenre string    `json:"favoriteGenre,omitempty" db:"favorite_genre"`
	Location      string    `json:"location,omitempty" db:"location"`
	CreatedAt     time.Time `json:"-" db:"created_at"`
	UpdatedAt     time.Time `json:"-" db:"updated_at"`
}

// CredentialsRequest тело запроса для регистрации и входа
type CredentialsRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"password123"`
}

// AuthResponse ответ register/login: идентификатор, имя и токен
type AuthResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ProfilePatch частичное обновление профиля. Поля-указатели, чтобы
// отличать «ключ не передан» от «ключ передан с нулевым значением»:
// readingGoal: 0 — это настоящее обновление.
type ProfilePatch struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Bio           *string `json:"bio"`
	BirthDate     *string `json:"birthDate"`
	ReadingGoal   *int    `json:"readingGoal"`
	FavoriteGenre *string `json:"favoriteGenre"`
	Location      *string `json:"location"`
}

// Changes возвращает карту «колонка -> значение» только для явно переданных полей
func (p ProfilePatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Phone != nil {
		changes["phone"] = *p.Phone
	}
	if p.Bio != nil {
		changes["bio"] = *p.Bio
	}
	if p.BirthDate != nil {
		changes["birth_date"] = *p.BirthDate
	}
	if p.ReadingGoal != nil {
		changes["reading_goal"] = *p.ReadingGoal
	}
	if p.FavoriteGenre != nil {
		changes["favorite_genre"] = *p.FavoriteGenre
	}
	if p.Location != nil {
		changes["location"] = *p.Location
	}
	return changes
}
