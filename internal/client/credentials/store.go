package credentials

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirName  = "booktrack"
	fileName = "token"
)

// Store хранит один bearer-токен в файле под каталогом конфигурации
// пользователя. Отсутствие файла означает «не залогинен». Токен лежит
// в открытом виде — шифрование хранилища вне рамок этой версии.
type Store struct {
	path string
}

// NewStore создает хранилище в BOOKTRACK_CONFIG_DIR или в каталоге
// конфигурации пользователя
func NewStore() (*Store, error) {
	dir := os.Getenv("BOOKTRACK_CONFIG_DIR")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, dirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, fileName)}, nil
}

// SignIn сохраняет токен; с этого момента он доступен всем запросам
func (s *Store) SignIn(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// SignOut удаляет токен. Повторный выход — не ошибка.
func (s *Store) SignOut() error {
	err := os.Remove(s.path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Token возвращает сохраненный токен; пустая строка — «не залогинен»
func (s *Store) Token() string {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
