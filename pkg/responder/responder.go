package responder

import (
	"encoding/json"
	"net/http"
)

// Responder определяет интерфейс для отправки ответов
type Responder interface {
	Respond(w http.ResponseWriter, status int, data interface{})
	Error(w http.ResponseWriter, status int, message string)
	Decode(r *http.Request, v interface{}) error
}

// ErrorResponse представляет стандартный ответ об ошибке.
// Клиенты различают сбои только по HTTP-статусу и строке message.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse тело успешного ответа, состоящее из одного сообщения
type MessageResponse struct {
	Message string `json:"message"`
}

// JSONResponder реализует Responder для JSON ответов
type JSONResponder struct{}

// NewJSONResponder создает новый JSONResponder
func NewJSONResponder() *JSONResponder {
	return &JSONResponder{}
}

// Respond отправляет успешный JSON ответ
func (j *JSONResponder) Respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error отправляет JSON ответ с ошибкой
func (j *JSONResponder) Error(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

// Decode декодирует тело запроса в структуру
func (j *JSONResponder) Decode(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
