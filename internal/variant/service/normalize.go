package service

import (
	"regexp"
	"strings"
)

// Нормализация вынесена в именованные шаги: substring-эвристики каскада
// должны быть проверяемы по отдельности, а не размазаны по вызовам.

// пробелы, включая NBSP/узкие из UI
var reSpace = regexp.MustCompile(`[\s\x{00A0}\x{2009}\x{202F}]+`)

// всё, что не буква/цифра/пробел — в пробел (для заголовков)
var rePunct = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// collapseSpaces — схлопывает любые пробельные последовательности в один пробел.
func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(s, " "))
}

// matchKey — ключ для substring-тестов: нижний регистр, пробелы выкинуты
// совсем. UI дробит логическое поле по ячейкам и подкладывает NBSP,
// поэтому сравнение должно быть нечувствительно и к регистру, и к пробелам.
func matchKey(s string) string {
	return strings.ToLower(reSpace.ReplaceAllString(s, ""))
}

// containsKey — substring-тест над matchKey-ключами. Пустая цель не матчится
// никогда: отсутствие данных не считается совпадением.
func containsKey(haystack, needle string) bool {
	n := matchKey(needle)
	if n == "" {
		return false
	}
	return strings.Contains(matchKey(haystack), n)
}

// normCaption — нормализация заголовка колонки: нижний регистр,
// пунктуация → пробел, схлопнуть.
func normCaption(s string) string {
	return collapseSpaces(strings.ToLower(rePunct.ReplaceAllString(s, " ")))
}

// normCell — значение ячейки для точного сравнения: trim + нижний регистр.
func normCell(s string) string {
	return strings.ToLower(collapseSpaces(s))
}
