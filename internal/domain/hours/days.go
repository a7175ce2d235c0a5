package hours

import (
	"strings"
	"time"
)

// Locale selects the language of the day-name keys.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleSpanish Locale = "es"
)

// Indexed by time.Weekday: Sunday is 0.
//
//nolint:gochecknoglobals
var dayNames = map[Locale][7]string{
	LocaleEnglish: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	LocaleSpanish: {"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"},
}

//nolint:gochecknoglobals
var dayAliases = buildDayAliases()

func buildDayAliases() map[string]time.Weekday {
	aliases := make(map[string]time.Weekday, 21)
	for _, names := range dayNames {
		for wd, name := range names {
			aliases[strings.ToLower(name)] = time.Weekday(wd)
		}
	}
	aliases["miercoles"] = time.Wednesday
	aliases["sabado"] = time.Saturday

	return aliases
}

// ParseLocale falls back to Spanish for unknown values.
func ParseLocale(s string) Locale {
	if Locale(strings.ToLower(s)) == LocaleEnglish {
		return LocaleEnglish
	}

	return LocaleSpanish
}

// DayName returns the key used for weekday in the given locale.
func DayName(locale Locale, wd time.Weekday) string {
	names, ok := dayNames[locale]
	if !ok {
		names = dayNames[LocaleSpanish]
	}

	return names[wd]
}

// ParseDay resolves an English or Spanish day name, ignoring case and accents.
func ParseDay(name string) (time.Weekday, bool) {
	wd, ok := dayAliases[strings.ToLower(strings.TrimSpace(name))]

	return wd, ok
}
