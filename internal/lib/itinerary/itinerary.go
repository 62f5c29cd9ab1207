// Package itinerary генерирует маршрут поездки по текстовому запросу.
//
// Генерация детерминированная: это подстановка фиксированных фраз,
// подобранных по уровню бюджета, без обращений к внешним сервисам.
// Одинаковые аргументы всегда дают одинаковый результат.
package itinerary

import (
	"fmt"
	"strings"

	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// promptExcerptLen сколько символов запроса попадает в текст утра.
// Обрезка молчаливая, без многоточия.
const promptExcerptLen = 80

// budgetHints фиксированные тройки подсказок по уровням бюджета:
// [утро, день, вечер].
var budgetHints = map[string][3]string{
	"shoestring": {"street food", "free walking tours", "public transit"},
	"standard":   {"local bistros", "top sights", "rideshare"},
	"luxury":     {"fine dining", "private tours", "chauffeur"},
}

// Hints возвращает тройку подсказок для уровня бюджета.
// Сравнение регистронезависимое, неизвестные значения и пустая
// строка дают уровень standard.
func Hints(budget string) [3]string {
	if hints, ok := budgetHints[strings.ToLower(budget)]; ok {
		return hints
	}
	return budgetHints["standard"]
}

// Generate строит план на каждый день от 1 до days включительно.
// Направление подставляется в тему дня, при отсутствии — "Explorer".
func Generate(prompt string, days int, destination, budget string) []models.DayPlan {
	hints := Hints(budget)

	if destination == "" {
		destination = "Explorer"
	}

	excerpt := prompt
	if runes := []rune(prompt); len(runes) > promptExcerptLen {
		excerpt = string(runes[:promptExcerptLen])
	}

	plans := make([]models.DayPlan, 0, days)
	for d := 1; d <= days; d++ {
		plans = append(plans, models.DayPlan{
			Day:       d,
			Theme:     fmt.Sprintf("Day %d • %s", d, destination),
			Morning:   fmt.Sprintf("Start with %s near the main square. Stroll through a scenic district inspired by: %s", hints[0], excerpt),
			Afternoon: fmt.Sprintf("Visit two must-see spots. Consider a museum or viewpoint. Use %s.", hints[1]),
			Evening:   fmt.Sprintf("Dinner with a view, then a relaxing walk. End with %s back to stay.", hints[2]),
		})
	}
	return plans
}
