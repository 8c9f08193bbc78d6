package token

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/Thanaphat465415241003/book-tracker-app/pkg/responder"
)

// Validity срок действия выдаваемых токенов
const Validity = 30 * 24 * time.Hour

// Auth выпускает и проверяет JWT сессионные токены (HS256).
// Полезная нагрузка — одно утверждение {id: <userId>}.
type Auth struct {
	ja *jwtauth.JWTAuth
}

// New создает Auth с серверным секретом
func New(secret []byte) *Auth {
	return &Auth{ja: jwtauth.New("HS256", secret, nil)}
}

// Issue выпускает подписанный токен с идентификатором пользователя
// и фиксированным сроком действия
func (a *Auth) Issue(userID string) (string, error) {
	claims := map[string]interface{}{"id": userID}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, Validity)

	_, tokenString, err := a.ja.Encode(claims)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

type userIDKey struct{}

// UserIDFromContext возвращает идентификатор пользователя,
// сохраненный middleware после проверки токена
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok
}

// Middleware проверяет заголовок Authorization: Bearer <token>.
// Отсутствие токена и невалидный токен различаются сообщениями —
// это часть контракта API.
func (a *Auth) Middleware(rsp responder.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := jwtauth.TokenFromHeader(r)
			if tokenString == "" {
				rsp.Error(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			// Проверка подписи и срока действия
			tok, err := jwtauth.VerifyToken(a.ja, tokenString)
			if err != nil || tok == nil {
				rsp.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			id, ok := tok.Get("id")
			userID, isString := id.(string)
			if !ok || !isString || userID == "" {
				rsp.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
