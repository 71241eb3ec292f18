// Package locale holds the bot's user-facing strings in English and
// Ukrainian and renders them with {name} placeholder substitution.
package locale

import (
	"regexp"
	"strconv"
)

// Supported language codes.
const (
	English   = "en"
	Ukrainian = "uk"
)

var languages = map[string]map[string]string{
	English:   en,
	Ukrainian: uk,
}

// names of languages for the /language menu.
var languageNames = map[string]string{
	English:   "English",
	Ukrainian: "Українська",
}

var placeholderRE = regexp.MustCompile(`\{(\w+)\}`)

// Vars carries placeholder substitutions for T.
type Vars map[string]string

// T returns the translation for key in the given language. Unknown
// languages and missing keys fall back to English; a key missing there
// too is returned verbatim so a broken template is visible, not silent.
func T(lang, key string, vars Vars) string {
	msgs, ok := languages[lang]
	if !ok {
		msgs = en
	}
	msg, ok := msgs[key]
	if !ok {
		if msg, ok = en[key]; !ok {
			msg = key
		}
	}
	if len(vars) == 0 {
		return msg
	}
	return placeholderRE.ReplaceAllStringFunc(msg, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// Valid reports whether code is a supported language.
func Valid(code string) bool {
	_, ok := languages[code]
	return ok
}

// Name returns the display name of a language code.
func Name(code string) string {
	if n, ok := languageNames[code]; ok {
		return n
	}
	return code
}

// LeadTimeLabel renders a remind-before value (minutes) as human text,
// e.g. 60 -> "1 hour", 1440 -> "1 day".
func LeadTimeLabel(lang string, minutes int) string {
	switch minutes {
	case 60:
		return T(lang, "lead_1h", nil)
	case 180:
		return T(lang, "lead_3h", nil)
	case 1440:
		return T(lang, "lead_1d", nil)
	}
	return strconv.Itoa(minutes) + " min"
}
