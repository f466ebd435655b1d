// Package harness выполняет запрошенные release-задачи.
//
// Harness получает реестр задач и общее состояние запуска, затем:
//   - резолвит все запрошенные имена до запуска первой задачи —
//     неизвестное имя прерывает запуск до каких-либо side effects
//   - выполняет задачи строго последовательно, в запрошенном порядке
//   - прерывается на первой ошибке, без отката и без продолжения:
//     у задач внешние side effects (ветки, коммиты), и продолжать
//     после сбоя значило бы его замаскировать
//
// Метрики запуска (metrics.go) отправляются в Pushgateway,
// если он сконфигурирован.
package harness
