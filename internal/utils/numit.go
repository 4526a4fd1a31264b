package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rxKeepNums  = regexp.MustCompile(`[^\d\.\-]`)
	rxThousands = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})+$`)
)

// ParseFloatIT парсит числа в итальянском формате Archibald: "1.234,50",
// "10,0", "1 250" (NBSP/NNBSP как разделитель тысяч) и т.п.
// Точка — разделитель тысяч, запятая — десятичный.
func ParseFloatIT(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// убрать неразрывные/узкие пробелы и обычные пробелы
	repl := strings.NewReplacer(" ", "", " ", "", " ", "", "\t", "")
	s = repl.Replace(s)
	// "1.234,50": точки-тысячи выкидываем только при наличии десятичной запятой,
	// иначе точка внутри ID-подобного мусора отфильтруется ниже
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if rxThousands.MatchString(s) {
		// "1.250" без запятой — это тысячи, не 1.25
		s = strings.ReplaceAll(s, ".", "")
	}
	// оставить только цифры, точку и минус (на случай мусора в ячейке)
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
