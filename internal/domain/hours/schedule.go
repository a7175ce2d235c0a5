package hours

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Closed is the canonical descriptor of a day without opening hours.
const Closed = "Closed"

// Schedule maps day names to descriptors. A missing day is closed.
type Schedule map[string]string

// IsClosed reports whether desc spells "closed" in any case.
func IsClosed(desc string) bool {
	return strings.EqualFold(strings.TrimSpace(desc), Closed)
}

// For returns the descriptor of weekday, looking keys up by weekday index so either locale matches.
func (s Schedule) For(wd time.Weekday) (string, bool) {
	for _, locale := range []Locale{LocaleSpanish, LocaleEnglish} {
		if desc, ok := s[DayName(locale, wd)]; ok {
			return desc, true
		}
	}

	for key, desc := range s {
		if day, ok := ParseDay(key); ok && day == wd {
			return desc, true
		}
	}

	return "", false
}

// HasOpenDay reports whether at least one day is not closed.
func (s Schedule) HasOpenDay() bool {
	for _, desc := range s {
		if !IsClosed(desc) && strings.TrimSpace(desc) != "" {
			return true
		}
	}

	return false
}

// ErrUnknownDay is returned by Normalize for keys that are not day names.
var ErrUnknownDay = errors.New("unknown day name")

// ErrDuplicateDay is returned by Normalize when two keys name the same weekday.
var ErrDuplicateDay = errors.New("duplicate day")

// Normalize rewrites keys into locale, canonicalises closed days and validates every range.
func Normalize(locale Locale, raw map[string]string) (Schedule, error) {
	out := make(Schedule, len(raw))
	seen := make(map[time.Weekday]string, len(raw))

	for key, desc := range raw {
		wd, ok := ParseDay(key)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownDay, "%q", key)
		}
		if prev, dup := seen[wd]; dup {
			return nil, errors.Wrapf(ErrDuplicateDay, "%q and %q", prev, key)
		}
		seen[wd] = key

		desc = strings.TrimSpace(desc)
		if IsClosed(desc) {
			out[DayName(locale, wd)] = Closed

			continue
		}

		r, err := ParseRange(desc)
		if err != nil {
			return nil, err
		}
		out[DayName(locale, wd)] = r.String()
	}

	return out, nil
}
