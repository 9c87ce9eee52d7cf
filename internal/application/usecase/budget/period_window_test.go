// Package budget contains budget-related use cases.
package budget

import (
	"testing"
	"time"

	"github.com/fundflow/backend/internal/domain/entity"
)

func TestPeriodWindow(t *testing.T) {
	tests := []struct {
		name      string
		duration  entity.BudgetDuration
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "weekly midweek",
			duration:  entity.BudgetDurationWeekly,
			now:       time.Date(2026, time.August, 26, 15, 30, 0, 0, time.UTC), // Wednesday
			wantStart: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly on monday",
			duration:  entity.BudgetDurationWeekly,
			now:       time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly on sunday belongs to preceding monday",
			duration:  entity.BudgetDurationWeekly,
			now:       time.Date(2026, time.August, 30, 23, 59, 0, 0, time.UTC), // Sunday
			wantStart: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly spanning month boundary",
			duration:  entity.BudgetDurationWeekly,
			now:       time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC), // Tuesday
			wantStart: time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly",
			duration:  entity.BudgetDurationMonthly,
			now:       time.Date(2026, time.February, 14, 8, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly in december rolls into next year",
			duration:  entity.BudgetDurationMonthly,
			now:       time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "yearly",
			duration:  entity.BudgetDurationYearly,
			now:       time.Date(2026, time.July, 4, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := periodWindow(tt.duration, tt.now)
			if !start.Equal(tt.wantStart) {
				t.Errorf("expected start %s, got %s", tt.wantStart, start)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("expected end %s, got %s", tt.wantEnd, end)
			}
		})
	}
}
