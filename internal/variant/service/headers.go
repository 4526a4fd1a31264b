package service

import (
	"strings"

	"variant-service/internal/variant/model"
)

// Семейства подписей колонок в выпадашке Archibald (итальянская локаль).
// Ищем по подстроке в нормализованном заголовке — UI то сокращает,
// то склеивает подписи.
var (
	packCaptions     = []string{"contenuto", "confez", "imball", "pacco"}
	multipleCaptions = []string{"multipl"}
	contentCaptions  = []string{"descrizione", "nome"}
)

// ComputeVariantHeaderIndices — по списку подписей колонок находит роли:
// колонка содержимого упаковки, колонка кратности, запасная текстовая.
// Берётся ПЕРВАЯ подошедшая колонка на роль; нераспознанная роль = -1 —
// это штатное состояние (у варианта просто нет таких метаданных), не ошибка.
func ComputeVariantHeaderIndices(headerTexts []string) model.HeaderIndices {
	idx := model.HeaderIndices{PackIndex: -1, MultipleIndex: -1, ContentIndex: -1}
	for i, h := range headerTexts {
		n := normCaption(h)
		if n == "" {
			continue
		}
		if idx.PackIndex < 0 && captionHasAny(n, packCaptions) {
			idx.PackIndex = i
			continue
		}
		if idx.MultipleIndex < 0 && captionHasAny(n, multipleCaptions) {
			idx.MultipleIndex = i
			continue
		}
		if idx.ContentIndex < 0 && captionHasAny(n, contentCaptions) {
			idx.ContentIndex = i
		}
	}
	return idx
}

func captionHasAny(caption string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(caption, s) {
			return true
		}
	}
	return false
}
