package handler

import (
	"net/http"
	"time"

	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/pkg/response"

	"github.com/sirupsen/logrus"
)

// DashboardHandler serves the derived views: reminders and the summary
type DashboardHandler struct {
	reminders ReminderService
	dashboard DashboardService
	logger    *logrus.Logger
	location  *time.Location
	now       func() time.Time
}

// NewDashboardHandler computes "today" in location
func NewDashboardHandler(reminders ReminderService, dashboard DashboardService, location *time.Location, logger *logrus.Logger) *DashboardHandler {
	if location == nil {
		location = time.Local
	}
	return &DashboardHandler{
		reminders: reminders,
		dashboard: dashboard,
		logger:    logger,
		location:  location,
		now:       time.Now,
	}
}

// Reminders handles GET /reminders?priority=high
func (h *DashboardHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminders.List(r.Context(), h.today())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	if priority := domain.Priority(r.URL.Query().Get("priority")); priority != "" {
		filtered := make([]domain.Reminder, 0, len(reminders))
		for _, reminder := range reminders {
			if reminder.Priority == priority {
				filtered = append(filtered, reminder)
			}
		}
		reminders = filtered
	}

	response.Success(w, reminders)
}

// Summary handles GET /dashboard
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.Summary(r.Context(), h.today())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	response.Success(w, summary)
}

func (h *DashboardHandler) today() time.Time {
	return h.now().In(h.location)
}
