package service

import (
	"fmt"
	"strings"

	"variant-service/internal/utils"
	"variant-service/internal/variant/model"
)

// BuildVariantCandidates — для каждой строки независимо считает пять булевых
// флагов против целевого дескриптора. Порядок и длина входа сохраняются;
// кто победит — эта функция не знает.
//
// Инвариант «отсутствие не матчится»: если поле дескриптора пустое или
// колонка не распознана (-1), соответствующий флаг всегда false.
// Ошибка — только кривая форма снапшота (CellTexts == nil): это баг
// скрейпера, его нельзя маскировать под «вариант не найден».
func BuildVariantCandidates(rows []model.RowSnapshot, headers model.HeaderIndices, target model.VariantDescriptor) ([]model.Candidate, error) {
	out := make([]model.Candidate, 0, len(rows))
	for _, row := range rows {
		if row.CellTexts == nil {
			return nil, fmt.Errorf("row %d (id=%q): snapshot has no cellTexts", row.Index, row.RowID)
		}
		rowText := strings.Join(row.CellTexts, " | ")
		c := model.Candidate{
			Index:   row.Index,
			RowText: rowText,

			FullIDMatch:      containsKey(rowText, target.FullID),
			ArticleNameMatch: containsKey(rowText, target.ArticleName),
			SuffixMatch:      containsKey(rowText, target.Suffix),
			PackageMatch:     packageMatches(row.CellTexts, headers.PackIndex, target.PackageContent),
			MultipleMatch:    multipleMatches(row.CellTexts, headers.MultipleIndex, target.MultipleQty),
		}
		out = append(out, c)
	}
	return out, nil
}

// packageMatches — сравнение «содержимого упаковки»: сначала как текст
// (trim + casefold), затем как число — UI рендерит "10,0" там, где
// каталог хранит "10".
func packageMatches(cells []string, packIndex int, want string) bool {
	if packIndex < 0 || want == "" || packIndex >= len(cells) {
		return false
	}
	cell := cells[packIndex]
	if normCell(cell) == normCell(want) {
		return true
	}
	cv, cok := utils.ParseFloatIT(cell)
	wv, wok := utils.ParseFloatIT(want)
	return cok && wok && cv == wv
}

// multipleMatches — кратность сравниваем только как число; нечитаемая
// ячейка = false, не ошибка.
func multipleMatches(cells []string, multipleIndex int, want *float64) bool {
	if multipleIndex < 0 || want == nil || multipleIndex >= len(cells) {
		return false
	}
	v, ok := utils.ParseFloatIT(cells[multipleIndex])
	return ok && v == *want
}
