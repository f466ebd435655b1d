// Package ghclient — минимальный клиент GitHub REST API для release-задач.
//
// Покрывает только то, что нужно задачам:
//   - получить ветку (и коммит её HEAD)
//   - создать ref (новую ветку)
//   - прочитать файл по ref
//   - закоммитить обновление файла
//
// Токен берётся из переменной окружения GITHUB_ACCESS_TOKEN и
// проверяется при первом обращении к API, а не при создании клиента:
// задачи, не ходящие в GitHub, должны работать и без токена.
package ghclient
