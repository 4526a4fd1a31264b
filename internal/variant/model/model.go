package model

// VariantDescriptor — целевой вариант, найденный в локальном каталоге.
// В выпадашке Archibald он никогда не присутствует как машинный ключ,
// поэтому матчим по косвенным признакам.
type VariantDescriptor struct {
	FullID         string   `json:"fullId"`                   // полный ID варианта (напр. "9530.900.260K1")
	Suffix         string   `json:"suffix"`                   // хвост ID (1-2 символа), часто виден в тексте строки
	PackageContent string   `json:"packageContent,omitempty"` // содержимое упаковки ("5", "10"); "" = нет данных
	MultipleQty    *float64 `json:"multipleQty,omitempty"`    // кратность заказа; nil = нет данных
	ArticleName    string   `json:"articleName"`              // код/имя артикула, как вводит оператор
}

// RowSnapshot — одна строка выпадашки, как её отдал слой скрейпинга.
// Index — позиция в видимом списке, НЕ стабильный ID между перерисовками.
type RowSnapshot struct {
	Index     int      `json:"index"`
	CellTexts []string `json:"cellTexts"`      // по одной на видимую колонку, в порядке отображения
	RowID     string   `json:"rowId,omitempty"` // опаковый ID из UI, только для отладки
}

// HeaderIndices — разрешённые роли колонок. -1 = колонка не распознана,
// соответствующие флаги кандидатов тогда безусловно false.
type HeaderIndices struct {
	PackIndex     int `json:"packIndex"`
	MultipleIndex int `json:"multipleIndex"`
	ContentIndex  int `json:"contentIndex"`
}

// Candidate — строка, оценённая против целевого варианта.
type Candidate struct {
	Index   int    `json:"index"`
	RowText string `json:"rowText"` // вся строка одним текстом, для диагностики и substring-тестов

	FullIDMatch      bool `json:"fullIdMatch"`
	ArticleNameMatch bool `json:"articleNameMatch"`
	SuffixMatch      bool `json:"suffixMatch"`
	PackageMatch     bool `json:"packageMatch"`
	MultipleMatch    bool `json:"multipleMatch"`
}

// ChoiceResult — итог каскада. Chosen == nil и Reason == "" значит
// «безопасного совпадения нет», вызывающий обязан прервать ввод, а не гадать.
type ChoiceResult struct {
	Chosen *Candidate `json:"chosen"`
	Reason string     `json:"reason,omitempty"`
}

// Confidence — грубая градация доверия к выбору (для бизнес-политики
// «автокоммит только на HIGH/MEDIUM»).
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
	ConfidenceNone   Confidence = "NONE"
)

// NavPlan — план клавиатурной навигации от текущего фокуса к выбранной строке.
type NavPlan struct {
	Direction string `json:"direction"` // "down" | "up"
	Steps     int    `json:"steps"`
}
