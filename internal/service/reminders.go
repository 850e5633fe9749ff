package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/repository"
	"github.com/segyhp/travel-crm/pkg/utils"

	"github.com/sirupsen/logrus"
)

// ReminderService derives document expiry reminders from stored customers
type ReminderService struct {
	repo   repository.RecordRepository
	logger *logrus.Logger
}

func NewReminderService(repo repository.RecordRepository, logger *logrus.Logger) *ReminderService {
	return &ReminderService{repo: repo, logger: logger}
}

// List returns the reminders due as of now, soonest first
func (s *ReminderService) List(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	customers, err := loadCustomers(ctx, s.repo)
	if err != nil {
		return nil, err
	}

	reminders := BuildReminders(customers, now)

	s.logger.WithFields(logrus.Fields{
		"customers": len(customers),
		"reminders": len(reminders),
	}).Debug("reminders built")

	return reminders, nil
}

// BuildReminders surfaces every customer document whose date falls inside its
// look-ahead window and has not passed. The result is sorted by days left;
// ties keep customer order, then passport, Schengen, US visa.
func BuildReminders(customers []domain.Customer, now time.Time) []domain.Reminder {
	reminders := make([]domain.Reminder, 0)

	for _, customer := range customers {
		for _, kind := range domain.ReminderTypes {
			date := documentDate(customer, kind)
			if date == "" {
				continue
			}

			target, ok := utils.ParseDate(date)
			if !ok {
				continue
			}
			daysLeft, _ := utils.DaysUntil(date, now)
			if daysLeft < 0 || !domain.WithinWindow(kind, target, now) {
				continue
			}

			reminders = append(reminders, domain.Reminder{
				Type:         kind,
				Priority:     domain.ClassifyReminder(kind, daysLeft),
				Message:      reminderMessage(kind, customer.Name, daysLeft),
				DaysLeft:     daysLeft,
				Date:         date,
				DisplayDate:  utils.FormatForDisplay(date),
				CustomerID:   customer.ID,
				CustomerName: customer.Name,
			})
		}
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DaysLeft < reminders[j].DaysLeft
	})

	return reminders
}

// CountByPriority tallies reminders per priority, every priority present
func CountByPriority(reminders []domain.Reminder) map[domain.Priority]int {
	counts := map[domain.Priority]int{
		domain.PriorityHigh:   0,
		domain.PriorityMedium: 0,
		domain.PriorityLow:    0,
	}
	for _, r := range reminders {
		counts[r.Priority]++
	}
	return counts
}

func documentDate(c domain.Customer, kind domain.ReminderType) string {
	switch kind {
	case domain.ReminderPassport:
		return c.PassportExpiry
	case domain.ReminderSchengen:
		return c.SchengenVisaEndDate
	case domain.ReminderUSVisa:
		if !c.HasUSVisa {
			return ""
		}
		return c.USVisaEndDate
	default:
		return ""
	}
}

func reminderMessage(kind domain.ReminderType, name string, daysLeft int) string {
	label := domain.ReminderLabel(kind)
	switch daysLeft {
	case 0:
		return fmt.Sprintf("%s of %s expires today", label, name)
	case 1:
		return fmt.Sprintf("%s of %s expires tomorrow", label, name)
	default:
		return fmt.Sprintf("%s of %s expires in %d days", label, name, daysLeft)
	}
}

func loadCustomers(ctx context.Context, repo repository.RecordRepository) ([]domain.Customer, error) {
	return loadAll[domain.Customer](ctx, repo, domain.CustomerSchema)
}
