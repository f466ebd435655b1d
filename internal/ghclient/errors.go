package ghclient

import (
	"errors"
	"strconv"
)

// Ошибки клиента.
var (
	// ErrNoToken — не задана переменная окружения с токеном доступа.
	ErrNoToken = errors.New("the GITHUB_ACCESS_TOKEN environment variable must contain a valid access token")

	// ErrNotFound — ветка или файл не найдены (HTTP 404).
	ErrNotFound = errors.New("not found")
)

// APIError — ошибка GitHub API с HTTP-статусом и сообщением из ответа.
type APIError struct {
	StatusCode int
	Message    string
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	return "github api: " + e.Message + " (status " + strconv.Itoa(e.StatusCode) + ")"
}
