package questionbank

import "legacy-server/internal/models"

// Generate builds a tailored question set for a confirmed project scope.
//
// The base categories come from the legacy type. Every scoping answer is then
// run through the theme mapping: multiselect answers contribute each selected
// theme, radio answers their single value. New categories are appended in
// encounter order without duplicates, and "Reflection & Legacy" is added when
// missing. Questions are copied so callers may edit freely.
func Generate(scope *models.ProjectScope) models.QuestionSet {
	categories := append([]string(nil), legacyTypeCategories[scope.LegacyType]...)

	appendCategory := func(name string) {
		for _, existing := range categories {
			if existing == name {
				return
			}
		}
		categories = append(categories, name)
	}

	for _, detail := range scope.ScopingDetails {
		if detail.Answer.IsList() {
			for _, theme := range detail.Answer.Choices {
				if mapped, ok := themeToCategory[theme]; ok {
					appendCategory(mapped)
				}
			}
		} else if mapped, ok := themeToCategory[detail.Answer.Text]; ok {
			appendCategory(mapped)
		}
	}

	appendCategory(CategoryReflection)

	set := models.QuestionSet{Priorities: map[string]models.Priority{}}
	for _, name := range categories {
		pool := questionsByCategory[name]
		if len(pool) == 0 {
			continue
		}
		set.Categories = append(set.Categories, models.QuestionCategory{
			Name:      name,
			Questions: append([]string(nil), pool...),
		})
	}
	return set
}
