// Package state содержит общее состояние одного запуска release-задач.
//
// State создаётся один раз на запуск и передаётся по указателю в каждую
// задачу. Содержит текущий релиз, каталог доступных релизов и логгер
// с проставленным run_id. Задачи читают состояние свободно; во время
// выполнения оно не мутируется.
//
// Здесь же живёт вычисление соседних релизов (NextRelease /
// PreviousRelease) — оно работает одновременно с каталогом и текущим
// релизом, поэтому принадлежит состоянию, а не каталогу.
package state
