package service

import (
	"context"
	"sort"
	"time"

	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/internal/config"
	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/repository"
	"github.com/segyhp/travel-crm/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// CurrencyTotal is the fee summary of one tracked currency
type CurrencyTotal struct {
	Currency       string          `json:"currency"`
	Paid           decimal.Decimal `json:"paid"`
	Pending        decimal.Decimal `json:"pending"`
	PaidDisplay    string          `json:"paidDisplay"`
	PendingDisplay string          `json:"pendingDisplay"`
}

// UpcomingCheckIn is a reservation whose check-in is close
type UpcomingCheckIn struct {
	ReservationID string `json:"reservationId"`
	CustomerID    string `json:"customerId"`
	HotelName     string `json:"hotelName"`
	City          string `json:"city"`
	CheckIn       string `json:"checkIn"`
	DisplayDate   string `json:"displayDate"`
	DaysLeft      int    `json:"daysLeft"`
}

// DashboardSummary is everything the dashboard renders
type DashboardSummary struct {
	Date             string                  `json:"date"`
	Customers        int                     `json:"customers"`
	VisaApplications int                     `json:"visaApplications"`
	ApprovalRate     int                     `json:"approvalRate"`
	VisaStatusCounts map[string]int          `json:"visaStatusCounts"`
	Fees             []CurrencyTotal         `json:"fees"`
	ActiveTours      int                     `json:"activeTours"`
	UpcomingCheckIns []UpcomingCheckIn       `json:"upcomingCheckIns"`
	ReminderCounts   map[domain.Priority]int `json:"reminderCounts"`
}

type DashboardService struct {
	repo         repository.RecordRepository
	cache        repository.SummaryCache
	logger       *logrus.Logger
	currencies   []string
	lang         language.Tag
	upcomingDays int
}

func NewDashboardService(repo repository.RecordRepository, cache repository.SummaryCache, cfg *config.Config, logger *logrus.Logger) *DashboardService {
	return &DashboardService{
		repo:         repo,
		cache:        cache,
		logger:       logger,
		currencies:   cfg.GetTrackedCurrencies(),
		lang:         cfg.GetDisplayLanguage(),
		upcomingDays: cfg.Business.UpcomingDays,
	}
}

// Summary returns the dashboard for the day of now, from cache when possible
func (s *DashboardService) Summary(ctx context.Context, now time.Time) (*DashboardSummary, error) {
	day := utils.FormatDate(now)
	loader := func(ctx context.Context) (any, error) {
		return s.compute(ctx, now)
	}

	if s.cache == nil {
		return s.compute(ctx, now)
	}

	key, err := s.cache.BuildKey(ctx, "dashboard", "summary", day)
	if err != nil {
		s.logger.WithError(err).Warn("dashboard cache unavailable, computing directly")
		return s.compute(ctx, now)
	}

	var summary DashboardSummary
	if err := s.cache.FetchJSON(ctx, key, &summary, loader); err != nil {
		return nil, err
	}

	return &summary, nil
}

// Refresh drops cached summaries and warms the cache for the day of now
func (s *DashboardService) Refresh(ctx context.Context, now time.Time) (*DashboardSummary, error) {
	if s.cache != nil {
		if err := s.cache.Bump(ctx); err != nil {
			return nil, err
		}
	}
	return s.Summary(ctx, now)
}

func (s *DashboardService) compute(ctx context.Context, now time.Time) (*DashboardSummary, error) {
	var (
		customers    []domain.Customer
		apps         []domain.VisaApplication
		tours        []domain.Tour
		reservations []domain.HotelReservation
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		customers, err = loadCustomers(ctx, s.repo)
		return err
	})

	g.Go(func() error {
		var err error
		apps, err = loadAll[domain.VisaApplication](ctx, s.repo, domain.VisaApplicationSchema)
		return err
	})

	g.Go(func() error {
		var err error
		tours, err = loadAll[domain.Tour](ctx, s.repo, domain.TourSchema)
		return err
	})

	g.Go(func() error {
		var err error
		reservations, err = loadAll[domain.HotelReservation](ctx, s.repo, domain.HotelReservationSchema)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := BuildSummary(SummaryInput{
		Now:          now,
		Customers:    customers,
		Applications: apps,
		Tours:        tours,
		Reservations: reservations,
		Currencies:   s.currencies,
		Language:     s.lang,
		UpcomingDays: s.upcomingDays,
	})

	s.logger.WithFields(logrus.Fields{
		"date":      summary.Date,
		"customers": summary.Customers,
		"visas":     summary.VisaApplications,
	}).Debug("dashboard summary computed")

	return summary, nil
}

// SummaryInput carries the loaded records a summary is built from
type SummaryInput struct {
	Now          time.Time
	Customers    []domain.Customer
	Applications []domain.VisaApplication
	Tours        []domain.Tour
	Reservations []domain.HotelReservation
	Currencies   []string
	Language     language.Tag
	UpcomingDays int
}

// BuildSummary computes the dashboard from loaded records
func BuildSummary(in SummaryInput) *DashboardSummary {
	currencies := in.Currencies
	if len(currencies) == 0 {
		currencies = DefaultCurrencies
	}

	totals := SumByCurrencyAndPaymentStatus(in.Applications, currencies)
	fees := make([]CurrencyTotal, 0, len(currencies))
	for _, c := range currencies {
		fees = append(fees, CurrencyTotal{
			Currency:       c,
			Paid:           totals.PaidIn(c),
			Pending:        totals.PendingIn(c),
			PaidDisplay:    utils.FormatAmount(totals.PaidIn(c), c, in.Language),
			PendingDisplay: utils.FormatAmount(totals.PendingIn(c), c, in.Language),
		})
	}

	activeTours := 0
	for _, t := range in.Tours {
		if t.IsActive() {
			activeTours++
		}
	}

	return &DashboardSummary{
		Date:             utils.FormatDate(in.Now),
		Customers:        len(in.Customers),
		VisaApplications: len(in.Applications),
		ApprovalRate:     ApprovalRate(in.Applications),
		VisaStatusCounts: CountByStatus(in.Applications),
		Fees:             fees,
		ActiveTours:      activeTours,
		UpcomingCheckIns: upcomingCheckIns(in.Reservations, in.Now, in.UpcomingDays),
		ReminderCounts:   CountByPriority(BuildReminders(in.Customers, in.Now)),
	}
}

func upcomingCheckIns(reservations []domain.HotelReservation, now time.Time, days int) []UpcomingCheckIn {
	upcoming := make([]UpcomingCheckIn, 0)
	for _, r := range reservations {
		if r.Status == domain.ReservationStatusCancelled {
			continue
		}
		daysLeft, ok := utils.DaysUntil(r.CheckIn, now)
		if !ok || daysLeft < 0 || daysLeft > days {
			continue
		}
		upcoming = append(upcoming, UpcomingCheckIn{
			ReservationID: r.ID,
			CustomerID:    r.CustomerID,
			HotelName:     r.HotelName,
			City:          r.City,
			CheckIn:       r.CheckIn,
			DisplayDate:   utils.FormatForDisplay(r.CheckIn),
			DaysLeft:      daysLeft,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DaysLeft < upcoming[j].DaysLeft
	})

	return upcoming
}

func loadAll[T any](ctx context.Context, repo repository.RecordRepository, schema *casing.Schema) ([]T, error) {
	rows, err := repo.List(ctx, schema, repository.ListFilter{})
	if err != nil {
		return nil, err
	}
	return domain.DecodeAll[T](schema.ToApplicationAll(rows))
}
