package duetime

import (
	"regexp"
	"strconv"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/en"
	"github.com/olebedev/when/rules/ru"

	"reminder-scheduler/internal/pkg/errs"
)

// bareHour reads "at 9" / "в 9" as 9:00. It runs after the library rules and
// leaves the context alone when one of them already set a clock time, so
// "at 9pm" and "в 9 вечера" keep their meaning.
func bareHour() rules.Rule {
	return &rules.F{
		RegExp: regexp.MustCompile(`(?i)(?:\P{L}|^)((?:at|в)\s+(\d{1,2}))(?:[.,;!?]?(?:\s|$))`),
		Applier: func(m *rules.Match, c *rules.Context, _ *rules.Options, _ time.Time) (bool, error) {
			if c.Hour != nil || c.Minute != nil {
				return false, nil
			}

			hour, err := strconv.Atoi(m.Captures[1])
			if err != nil {
				return false, errs.Wrap(err, "bare hour rule")
			}
			if hour > 23 {
				return false, nil
			}

			c.Hour = pointer.ToInt(hour)
			c.Minute = pointer.ToInt(0)
			c.Second = pointer.ToInt(0)
			return true, nil
		},
	}
}

var (
	weekdayExpr = regexp.MustCompile(`(?i)(?:\P{L}|^)(?:` + en.WEEKDAY_OFFSET_PATTERN + `|` + ru.WEEKDAY_OFFSET_PATTERN + `)(?:\P{L}|$)`)

	// expressions that pin the day, so a passed moment must not roll forward
	pinnedDayExpr = regexp.MustCompile(`(?i)(?:(?:\P{L}|^)(?:now|today|tonight|yesterday|ago|сейчас|сегодня|вчера|назад|` +
		en.MONTH_OFFSET_PATTERN + `)(?:\P{L}|$))|\d{1,2}[/\\]\d{1,2}`)
)

// forwardDate moves a clock time that already passed today to its next
// occurrence: the next day, or the next week when a weekday was named.
// Expressions that pin the day are left as parsed.
func forwardDate(at, reference time.Time, span string) time.Time {
	if at.After(reference) || pinnedDayExpr.MatchString(span) {
		return at
	}

	ref := reference.In(at.Location())
	if ay, am, ad := at.Date(); ay != ref.Year() || am != ref.Month() || ad != ref.Day() {
		return at
	}

	if weekdayExpr.MatchString(span) {
		return at.AddDate(0, 0, 7)
	}
	return at.AddDate(0, 0, 1)
}
