package domain

import "time"

// ReminderType names the document a reminder is about
type ReminderType string

const (
	ReminderPassport ReminderType = "passport"
	ReminderSchengen ReminderType = "schengen"
	ReminderUSVisa   ReminderType = "usVisa"
)

// Priority of a reminder
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Reminder is derived from customer data on every request and never stored
type Reminder struct {
	Type         ReminderType `json:"type"`
	Priority     Priority     `json:"priority"`
	Message      string       `json:"message"`
	DaysLeft     int          `json:"daysLeft"`
	Date         string       `json:"date"`
	DisplayDate  string       `json:"displayDate"`
	CustomerID   string       `json:"customerId"`
	CustomerName string       `json:"customerName"`
}

type reminderRule struct {
	high      int
	medium    int
	lookahead int // months
	label     string
}

// The Schengen look-ahead (one month) is wider than its medium threshold,
// so low priority Schengen reminders appear for days 15..~30.
var reminderRules = map[ReminderType]reminderRule{
	ReminderPassport: {high: 30, medium: 90, lookahead: 6, label: "Passport"},
	ReminderSchengen: {high: 7, medium: 14, lookahead: 1, label: "Schengen visa"},
	ReminderUSVisa:   {high: 30, medium: 60, lookahead: 3, label: "US visa"},
}

// ReminderTypes in the order reminders of one customer are produced
var ReminderTypes = []ReminderType{ReminderPassport, ReminderSchengen, ReminderUSVisa}

// ClassifyReminder maps days left to a priority using per-type thresholds
func ClassifyReminder(kind ReminderType, daysLeft int) Priority {
	rule, ok := reminderRules[kind]
	if !ok {
		return PriorityLow
	}

	switch {
	case daysLeft <= rule.high:
		return PriorityHigh
	case daysLeft <= rule.medium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ReminderLookahead returns how many months ahead a reminder type is surfaced
func ReminderLookahead(kind ReminderType) int {
	return reminderRules[kind].lookahead
}

// WithinWindow reports whether target falls between today and the end of the
// type's look-ahead window, both inclusive.
func WithinWindow(kind ReminderType, target, today time.Time) bool {
	rule, ok := reminderRules[kind]
	if !ok {
		return false
	}

	start := dateOnly(today)
	end := start.AddDate(0, rule.lookahead, 0)
	day := dateOnly(target)
	return !day.Before(start) && !day.After(end)
}

// ReminderLabel is the human name of the document
func ReminderLabel(kind ReminderType) string {
	return reminderRules[kind].label
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
