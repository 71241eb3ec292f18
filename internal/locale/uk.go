package locale

var uk = map[string]string{
	"welcome": "Вітаємо у F1 Fan Bot! 🏎️\n\n" +
		"Доступні команди:\n" +
		"/schedule - Переглянути розклад перегонів\n" +
		"/driverstandings - Поточні позиції пілотів\n" +
		"/constructorstandings - Поточні позиції конструкторів\n" +
		"/settimezone - Встановити часовий пояс\n" +
		"/remind - Встановити нагадування\n" +
		"/reminders - Керувати нагадуваннями\n" +
		"/live - Інформація про наступні перегони\n" +
		"/driver - Інформація про пілота (наприклад: /driver Hamilton)\n" +
		"/results - Результати останніх перегонів\n" +
		"/language - Налаштування мови",

	// Schedule
	"schedule_title":        "📅 Розклад сезону F1 {year}",
	"upcoming_races":        "🔜 Майбутні перегони:",
	"no_upcoming_races":     "⚠️ До кінця сезону перегонів не заплановано.",
	"schedule_not_released": "⚠️ Розклад F1 {year} ще не опубліковано.",
	"past_races":            "📅 Останні минулі перегони:",
	"no_past_races":         "⚠️ У цьому сезоні перегонів ще не було.",
	"no_races":              "❌ Розклад сезону F1 {year} недоступний. Спробуйте пізніше.",
	"race_round":            "🏁 Етап {round}: {raceName}",
	"race_location":         "📍 {location}",
	"race_circuit":          "🏎️ {circuitName}",
	"race_time":             "⏰ {date} {timezone}",
	"fp1":                   "🔹 Практика 1: {time}",
	"fp2":                   "🔹 Практика 2: {time}",
	"fp3":                   "🔹 Практика 3: {time}",
	"sprint":                "🔹 Спринт: {time}",
	"qualifying":            "🔹 Кваліфікація: {time}",

	// Standings
	"driver_standings_title":      "🏆 Поточний залік пілотів:",
	"constructor_standings_title": "🏭 Поточний залік конструкторів:",

	// Timezone
	"timezone_invalid": "Вкажіть коректний часовий пояс. Приклад:\n/settimezone Europe/Kyiv\n\n" +
		"Список поясів: https://en.wikipedia.org/wiki/List_of_tz_database_time_zones",
	"timezone_updated": "Часовий пояс встановлено: {timezone}",

	// Results
	"results_title": "🏁 {raceName}\n📅 {date}",
	"no_results":    "Результати перегонів не знайдено. Спробуйте пізніше.",

	// Live / next race
	"next_race_title":    "🏎️ Наступні перегони: {raceName}",
	"next_race_round":    "Етап {round} сезону {year}",
	"next_race_circuit":  "Траса: {circuitName}",
	"next_race_location": "Місце: {location}",
	"next_race_date":     "Дата: {date}",
	"countdown":          "До старту: {days} дн., {hours} год., {minutes} хв.",
	"no_upcoming_race":   "У цьому сезоні майбутніх перегонів не знайдено.",
	"top_standings":      "📊 Поточний залік (Топ-3):",

	// Driver info
	"driver_info_not_found": "Пілота не знайдено. Спробуйте інше ім'я або номер.",
	"driver_info_usage":     "Вкажіть ім'я або номер пілота. Приклад:\n/driver Hamilton\nабо\n/driver 44",

	// Reminders
	"remind_pick_race":   "⏰ Оберіть перегони для нагадування:",
	"remind_pick_lead":   "За скільки часу до {raceName} нагадати?",
	"remind_saved":       "✅ Нагадування встановлено: {raceName}, за {lead} до старту.",
	"remind_deleted":     "🗑 Нагадування видалено.",
	"remind_list_title":  "⏰ Ваші нагадування:",
	"remind_list_entry":  "{raceName} — за {lead} до старту",
	"remind_list_empty":  "У вас ще немає нагадувань. Використайте /remind щоб додати.",
	"remind_no_upcoming": "Немає майбутніх перегонів для нагадування.",
	"lead_1h":            "1 годину",
	"lead_3h":            "3 години",
	"lead_1d":            "1 день",
	"notification":       "🔔 {raceName} розпочнеться через {lead}!\n📍 {location}\n⏰ {start}",

	// Language
	"language_title":   "Налаштування мови",
	"language_current": "Поточна мова: {language}",
	"language_set":     "Мову змінено на українську",
	"language_invalid": "Невірний код мови. Доступні варіанти:\n- Англійська (/language_en)\n- Українська (/language_uk)",

	// Errors
	"error_general":               "Вибачте, сталася помилка. Спробуйте пізніше.",
	"error_schedule":              "Вибачте, не вдалося отримати розклад. Спробуйте пізніше.",
	"error_driver_standings":      "Вибачте, не вдалося отримати залік пілотів. Спробуйте пізніше.",
	"error_constructor_standings": "Вибачте, не вдалося отримати залік конструкторів. Спробуйте пізніше.",
	"error_timezone":              "Вибачте, не вдалося встановити часовий пояс. Спробуйте пізніше.",
	"error_results":               "Вибачте, не вдалося отримати результати. Спробуйте пізніше.",
	"error_live":                  "Вибачте, не вдалося отримати інформацію про перегони. Спробуйте пізніше.",
	"error_driver_info":           "Вибачте, не вдалося отримати інформацію про пілота. Спробуйте пізніше.",
	"error_reminder":              "Вибачте, не вдалося зберегти нагадування. Спробуйте пізніше.",
}
