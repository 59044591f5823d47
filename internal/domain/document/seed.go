package document

// SeedSet returns the fixed demo corpus admitted by seed.
func SeedSet() []Candidate {
	return []Candidate{
		{
			Title:       "Новости компании",
			Content:     "Наша компания запустила новый продукт для анализа данных.",
			ContentType: string(CategoryNews),
		},
		{
			Title:       "Как пользоваться приложением",
			Content:     "В этом руководстве мы расскажем, как начать работу шаг за шагом.",
			ContentType: string(CategoryFAQ),
		},
		{
			Title:       "Статья о поиске",
			Content:     "Поисковые системы используют индексы для быстрого поиска по тексту.",
			ContentType: string(CategoryArticle),
		},
		{
			Title:       "Блог о продуктивности",
			Content:     "Несколько советов о том, как повысить продуктивность на работе.",
			ContentType: string(CategoryBlog),
		},
		{
			Title:       "FAQ: учетная запись",
			Content:     "Частые вопросы о восстановлении пароля и настройке профиля.",
			ContentType: string(CategoryFAQ),
		},
	}
}
