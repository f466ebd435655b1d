// Package catalog читает внешние файлы с информацией о релизах.
//
// Включает:
//   - catalog.go    — загрузка каталога доступных релизов из CSV
//   - descriptor.go — чтение и запись plist-дескриптора текущего релиза
//
// Каталог — двухколоночный CSV (имя, версия). Некорректные строки
// не фатальны: они логируются на уровне debug и пропускаются.
// Нечитаемый файл — фатальная ParseError.
package catalog
