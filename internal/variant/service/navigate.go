package service

import "variant-service/internal/variant/model"

// PlanNavigation — направление и число нажатий стрелок от текущего фокуса
// к выбранной строке. focusedIndex == -1 значит «фокус неизвестен»:
// считаем, что он стоит на позицию выше первой строки, и идём к абсолютной
// позиции. Шаги ограничены rowCount+2 — если учёт фокуса устарел, бот не
// должен бесконечно долбить клавишами живую сессию.
func PlanNavigation(targetIndex, focusedIndex, rowCount int) model.NavPlan {
	delta := targetIndex + 1
	if focusedIndex >= 0 {
		delta = targetIndex - focusedIndex
	}

	dir := "down"
	steps := delta
	if delta < 0 {
		dir = "up"
		steps = -delta
	}
	if limit := rowCount + 2; steps > limit {
		steps = limit
	}
	return model.NavPlan{Direction: dir, Steps: steps}
}
