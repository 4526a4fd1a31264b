package catalog

import (
	"regexp"
	"strings"
)

var rxHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey — нормализуем имя колонки: нижний регистр, NBSP → пробел,
// служебные символы → пробел, схлопнуть. "QTÀ MULTIPLI" и "Qta  multipli"
// должны совпасть.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", " ", " ", " ", "à", "a", "è", "e", "é", "e", "ì", "i", "ò", "o", "ù", "u").Replace(s)
	s = rxHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey — ищем реальный ключ записи по желаемому имени колонки.
// Поддерживает альтернативы через "|" (например "nome articolo|articolo").
// Сначала точное совпадение, затем нормализованное, затем contains —
// экспорт любит составные заголовки типа "QTÀ MULTIPLI VENDITA".
func resolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	// точное совпадение (как есть)
	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	var nWantAll []string
	for _, a := range alts {
		nWantAll = append(nWantAll, normHeaderKey(a))
	}

	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range nWantAll {
			if nk == n {
				return k
			}
		}
		score := 0
		for _, n := range nWantAll {
			if n != "" && (strings.Contains(nk, n) || strings.Contains(n, nk)) {
				if len(n) > score {
					score = len(n)
				}
			}
		}
		if score > bestScore {
			bestScore, bestKey = score, k
		}
	}
	return bestKey
}
