package service

import "variant-service/internal/variant/model"

// Словарь причин выбора. Порядок правил в cascade — от сильного сигнала
// к слабому; менять порядок без сверки с ботом нельзя.
const (
	ReasonVariantID             = "variant-id"
	ReasonArticlePackMultiple   = "article+package+multiple"
	ReasonArticlePackage        = "article+package"
	ReasonArticleMultiple       = "article+multiple"
	ReasonPackMultipleSuffix    = "package+multiple+suffix"
	ReasonPackageSuffix         = "package+suffix"
	ReasonMultipleSuffix        = "multiple+suffix"
	ReasonArticle               = "article"
	ReasonSingleRow             = "single-row"
)

type rule struct {
	reason string
	match  func(c model.Candidate) bool
}

var cascade = []rule{
	{ReasonVariantID, func(c model.Candidate) bool { return c.FullIDMatch }},
	{ReasonArticlePackMultiple, func(c model.Candidate) bool { return c.ArticleNameMatch && c.PackageMatch && c.MultipleMatch }},
	{ReasonArticlePackage, func(c model.Candidate) bool { return c.ArticleNameMatch && c.PackageMatch }},
	{ReasonArticleMultiple, func(c model.Candidate) bool { return c.ArticleNameMatch && c.MultipleMatch }},
	{ReasonPackMultipleSuffix, func(c model.Candidate) bool { return c.PackageMatch && c.MultipleMatch && c.SuffixMatch }},
	{ReasonPackageSuffix, func(c model.Candidate) bool { return c.PackageMatch && c.SuffixMatch }},
	{ReasonMultipleSuffix, func(c model.Candidate) bool { return c.MultipleMatch && c.SuffixMatch }},
	{ReasonArticle, func(c model.Candidate) bool { return c.ArticleNameMatch }},
}

// ChooseBestVariantCandidate — каскад правил сверху вниз. Правило побеждает
// только когда ему удовлетворяет РОВНО один кандидат: неоднозначность на
// сильном правиле не «дорешивается» молча, а проваливается ниже — цена
// ошибки здесь это испорченная строка заказа. Последнее правило single-row
// срабатывает лишь когда видимая строка вообще одна. Иначе — пустой
// результат: «безопасного совпадения нет».
//
// Вход не мутируется; результат детерминирован для одинакового входа.
func ChooseBestVariantCandidate(candidates []model.Candidate) model.ChoiceResult {
	for _, r := range cascade {
		var hit *model.Candidate
		unique := true
		for i := range candidates {
			if !r.match(candidates[i]) {
				continue
			}
			if hit != nil {
				unique = false
				break
			}
			hit = &candidates[i]
		}
		if hit != nil && unique {
			chosen := *hit
			return model.ChoiceResult{Chosen: &chosen, Reason: r.reason}
		}
	}

	if len(candidates) == 1 {
		chosen := candidates[0]
		return model.ChoiceResult{Chosen: &chosen, Reason: ReasonSingleRow}
	}
	return model.ChoiceResult{}
}
