package locale

var en = map[string]string{
	"welcome": "Welcome to F1 Fan Bot! 🏎️\n\n" +
		"Available commands:\n" +
		"/schedule - View upcoming races\n" +
		"/driverstandings - Current driver standings\n" +
		"/constructorstandings - Current constructor standings\n" +
		"/settimezone - Set your timezone\n" +
		"/remind - Set race reminders\n" +
		"/reminders - Manage your reminders\n" +
		"/live - Get next race information\n" +
		"/driver - Get driver info (use: /driver Hamilton)\n" +
		"/results - Get last race results\n" +
		"/language - Change language",

	// Schedule
	"schedule_title":        "📅 F1 {year} Season Schedule",
	"upcoming_races":        "🔜 Upcoming Races:",
	"no_upcoming_races":     "⚠️ No upcoming races scheduled for the rest of the season.",
	"schedule_not_released": "⚠️ The {year} F1 schedule has not been released yet.",
	"past_races":            "📅 Recent Past Races:",
	"no_past_races":         "⚠️ No races have taken place this season yet.",
	"no_races":              "❌ No race schedule available for the {year} F1 season. Please try again later.",
	"race_round":            "🏁 Round {round}: {raceName}",
	"race_location":         "📍 {location}",
	"race_circuit":          "🏎️ {circuitName}",
	"race_time":             "⏰ {date} {timezone}",
	"fp1":                   "🔹 FP1: {time}",
	"fp2":                   "🔹 FP2: {time}",
	"fp3":                   "🔹 FP3: {time}",
	"sprint":                "🔹 Sprint: {time}",
	"qualifying":            "🔹 Quali: {time}",

	// Standings
	"driver_standings_title":      "🏆 Current Driver Standings:",
	"constructor_standings_title": "🏭 Current Constructor Standings:",

	// Timezone
	"timezone_invalid": "Please provide a valid timezone. Example:\n/settimezone Europe/London\n\n" +
		"Find your timezone here: https://en.wikipedia.org/wiki/List_of_tz_database_time_zones",
	"timezone_updated": "Timezone successfully set to {timezone}",

	// Results
	"results_title": "🏁 {raceName}\n📅 {date}",
	"no_results":    "No race results found. Please try again later.",

	// Live / next race
	"next_race_title":    "🏎️ Next Race: {raceName}",
	"next_race_round":    "Round {round} of the {year} season",
	"next_race_circuit":  "Circuit: {circuitName}",
	"next_race_location": "Location: {location}",
	"next_race_date":     "Date: {date}",
	"countdown":          "Countdown: {days} days, {hours} hours, {minutes} minutes",
	"no_upcoming_race":   "No upcoming races found for this season.",
	"top_standings":      "📊 Current Standings (Top 3):",

	// Driver info
	"driver_info_not_found": "Driver not found. Please try another name or number.",
	"driver_info_usage":     "Please specify a driver name or number. Example:\n/driver Hamilton\nor\n/driver 44",

	// Reminders
	"remind_pick_race":   "⏰ Pick a race to be reminded about:",
	"remind_pick_lead":   "How long before {raceName} should I remind you?",
	"remind_saved":       "✅ Reminder set: {raceName}, {lead} before the start.",
	"remind_deleted":     "🗑 Reminder deleted.",
	"remind_list_title":  "⏰ Your reminders:",
	"remind_list_entry":  "{raceName} — {lead} before start",
	"remind_list_empty":  "You have no reminders yet. Use /remind to add one.",
	"remind_no_upcoming": "No upcoming races to remind about.",
	"lead_1h":            "1 hour",
	"lead_3h":            "3 hours",
	"lead_1d":            "1 day",
	"notification":       "🔔 {raceName} starts in {lead}!\n📍 {location}\n⏰ {start}",

	// Language
	"language_title":   "Language Settings",
	"language_current": "Current language: {language}",
	"language_set":     "Language has been set to English",
	"language_invalid": "Invalid language code. Available options:\n- English (/language_en)\n- Ukrainian (/language_uk)",

	// Errors
	"error_general":               "Sorry, an error occurred. Please try again later.",
	"error_schedule":              "Sorry, there was an error fetching the schedule. Please try again later.",
	"error_driver_standings":      "Sorry, there was an error fetching the driver standings. Please try again later.",
	"error_constructor_standings": "Sorry, there was an error fetching the constructor standings. Please try again later.",
	"error_timezone":              "Sorry, there was an error setting your timezone. Please try again later.",
	"error_results":               "Sorry, there was an error fetching the race results. Please try again later.",
	"error_live":                  "Sorry, there was an error fetching the next race information. Please try again later.",
	"error_driver_info":           "Sorry, there was an error fetching the driver information. Please try again later.",
	"error_reminder":              "Sorry, there was an error saving your reminder. Please try again later.",
}
