// Package budget contains budget-related use cases.
package budget

import (
	"time"

	"github.com/fundflow/backend/internal/domain/entity"
)

// periodWindow returns the [start, end) interval the duration covers at the
// given instant. Weekly windows start on Monday, monthly windows on the first
// of the month, yearly windows on January 1st. All boundaries are in UTC.
func periodWindow(duration entity.BudgetDuration, now time.Time) (time.Time, time.Time) {
	now = now.UTC()

	switch duration {
	case entity.BudgetDurationWeekly:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday belongs to the week that started the previous Monday
		}
		start := time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 0, 7)

	case entity.BudgetDurationYearly:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)

	default: // monthly
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
}
