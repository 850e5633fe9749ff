package service_test

import (
	"testing"
	"time"

	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReminders(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

	customers := []domain.Customer{
		{
			ID:                  "a",
			Name:                "Ayşe",
			PassportExpiry:      "2024-01-20",
			SchengenVisaEndDate: "2024-01-15",
			HasUSVisa:           true,
			USVisaEndDate:       "2024-03-01",
		},
		{
			ID:                  "b",
			Name:                "Burak",
			PassportExpiry:      "2024-01-15",
			SchengenVisaEndDate: "2024-03-01",
			USVisaEndDate:       "2024-01-20",
		},
		{
			ID:                  "c",
			Name:                "Cem",
			PassportExpiry:      "2024-01-05",
			SchengenVisaEndDate: "2024-02-30",
		},
	}

	reminders := service.BuildReminders(customers, now)
	require.Len(t, reminders, 4)

	type key struct {
		customer string
		kind     domain.ReminderType
		days     int
		priority domain.Priority
	}
	got := make([]key, len(reminders))
	for i, r := range reminders {
		got[i] = key{r.CustomerID, r.Type, r.DaysLeft, r.Priority}
	}

	assert.Equal(t, []key{
		{"a", domain.ReminderSchengen, 5, domain.PriorityHigh},
		{"b", domain.ReminderPassport, 5, domain.PriorityHigh},
		{"a", domain.ReminderPassport, 10, domain.PriorityHigh},
		{"a", domain.ReminderUSVisa, 51, domain.PriorityMedium},
	}, got)

	assert.Equal(t, "15.01.2024", reminders[0].DisplayDate)
	assert.Equal(t, "Ayşe", reminders[0].CustomerName)
	assert.Equal(t, "Schengen visa of Ayşe expires in 5 days", reminders[0].Message)
}

func TestBuildReminders_Windows(t *testing.T) {
	now := time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		customer domain.Customer
		expected []domain.Priority
		message  string
	}{
		{
			name:     "passport expiring today",
			customer: domain.Customer{Name: "Deniz", PassportExpiry: "2024-01-10"},
			expected: []domain.Priority{domain.PriorityHigh},
			message:  "Passport of Deniz expires today",
		},
		{
			name:     "passport tomorrow",
			customer: domain.Customer{Name: "Deniz", PassportExpiry: "2024-01-11"},
			expected: []domain.Priority{domain.PriorityHigh},
			message:  "Passport of Deniz expires tomorrow",
		},
		{
			name:     "schengen twenty days out is low",
			customer: domain.Customer{Name: "Deniz", SchengenVisaEndDate: "2024-01-30"},
			expected: []domain.Priority{domain.PriorityLow},
		},
		{
			name:     "schengen ten days out is medium",
			customer: domain.Customer{Name: "Deniz", SchengenVisaEndDate: "2024-01-20"},
			expected: []domain.Priority{domain.PriorityMedium},
		},
		{
			name:     "passport five months out is low",
			customer: domain.Customer{Name: "Deniz", PassportExpiry: "2024-06-10"},
			expected: []domain.Priority{domain.PriorityLow},
		},
		{
			name:     "passport seven months out is hidden",
			customer: domain.Customer{Name: "Deniz", PassportExpiry: "2024-08-10"},
			expected: nil,
		},
		{
			name:     "us visa without flag is hidden",
			customer: domain.Customer{Name: "Deniz", USVisaEndDate: "2024-01-20"},
			expected: nil,
		},
		{
			name:     "garbage dates are hidden",
			customer: domain.Customer{Name: "Deniz", PassportExpiry: "10.02.2024", SchengenVisaEndDate: "soon"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reminders := service.BuildReminders([]domain.Customer{tt.customer}, now)

			var priorities []domain.Priority
			for _, r := range reminders {
				priorities = append(priorities, r.Priority)
			}
			assert.Equal(t, tt.expected, priorities)

			if tt.message != "" {
				require.NotEmpty(t, reminders)
				assert.Equal(t, tt.message, reminders[0].Message)
			}
		})
	}
}

func TestBuildReminders_Empty(t *testing.T) {
	reminders := service.BuildReminders(nil, time.Now())
	assert.NotNil(t, reminders)
	assert.Empty(t, reminders)
}

func TestCountByPriority(t *testing.T) {
	counts := service.CountByPriority([]domain.Reminder{
		{Priority: domain.PriorityHigh},
		{Priority: domain.PriorityHigh},
		{Priority: domain.PriorityLow},
	})

	assert.Equal(t, map[domain.Priority]int{
		domain.PriorityHigh:   2,
		domain.PriorityMedium: 0,
		domain.PriorityLow:    1,
	}, counts)
}
