// Package diag carries structured diagnostics from the scanner to the
// presentation layer.
//
// Поток: сканер обнаруживает проблему → Reporter.Report(...) в момент
// обнаружения → Bag накапливает упорядоченный список. Сканер никогда не
// пишет в консоль и никогда не прерывает проход; решение о фатальности
// ошибок принимает внешний драйвер.
//
// Bag ограничен сверху (max-diagnostics), чтобы патологический вход не
// раздувал память; Add возвращает false после достижения лимита.
package diag
