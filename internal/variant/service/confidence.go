package service

import "variant-service/internal/variant/model"

var confidenceByReason = map[string]model.Confidence{
	ReasonVariantID:           model.ConfidenceHigh,
	ReasonArticlePackMultiple: model.ConfidenceHigh,
	ReasonArticlePackage:      model.ConfidenceHigh,
	ReasonArticleMultiple:     model.ConfidenceHigh,
	ReasonPackMultipleSuffix:  model.ConfidenceHigh,
	ReasonPackageSuffix:       model.ConfidenceMedium,
	ReasonMultipleSuffix:      model.ConfidenceMedium,
	ReasonArticle:             model.ConfidenceMedium,
	ReasonSingleRow:           model.ConfidenceMedium,
}

// ClassifyConfidence — причина → градация доверия. Пустая причина (выбора
// не было) = NONE; незнакомая непустая = LOW, чтобы вызывающий не
// автокоммитил то, чему словарь не ручается.
func ClassifyConfidence(reason string) model.Confidence {
	if reason == "" {
		return model.ConfidenceNone
	}
	if c, ok := confidenceByReason[reason]; ok {
		return c
	}
	return model.ConfidenceLow
}
