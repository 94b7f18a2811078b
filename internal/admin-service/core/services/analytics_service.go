package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/myerrors"
	"ride-hail-admin/internal/mylogger"
)

const (
	Window7d  = "7d"
	Window30d = "30d"
	WindowAll = "all"
)

type AnalyticsService struct {
	ctx             context.Context
	mylog           mylogger.Logger
	analyticsRepo   ports.IAnalyticsRepo
	histogramSample int
}

func NewAnalyticsService(ctx context.Context,
	mylog mylogger.Logger,
	analyticsRepo ports.IAnalyticsRepo,
	histogramSample int,
) *AnalyticsService {
	return &AnalyticsService{
		ctx:             ctx,
		mylog:           mylog,
		analyticsRepo:   analyticsRepo,
		histogramSample: histogramSample,
	}
}

// Compute gathers all dashboard metrics for one window. The sub-fetches run
// concurrently and are joined before anything is returned; if any of them
// fails the whole aggregation is reported as failed.
func (as *AnalyticsService) Compute(ctx context.Context, window string) (dto.Stats, error) {
	log := as.mylog.Action("ComputeAnalytics").With("window", window)

	since, err := windowSince(window, time.Now().UTC())
	if err != nil {
		return dto.Stats{}, err
	}

	var (
		totalDrivers, totalRides, totalUsers, activeDrivers int
		fares                                               []*float64
		statuses                                            []string
	)

	fetches := []func() error{
		func() (err error) { totalDrivers, err = as.analyticsRepo.CountDrivers(ctx); return },
		func() (err error) { totalRides, err = as.analyticsRepo.CountRides(ctx, since); return },
		func() (err error) { totalUsers, err = as.analyticsRepo.CountUsers(ctx); return },
		func() (err error) { fares, err = as.analyticsRepo.FareFinals(ctx, since); return },
		func() (err error) { activeDrivers, err = as.analyticsRepo.CountActiveDrivers(ctx); return },
		func() (err error) { statuses, err = as.analyticsRepo.RecentStatuses(ctx, as.histogramSample); return },
	}

	errs := make([]error, len(fetches))
	var wg sync.WaitGroup
	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func() error) {
			defer wg.Done()
			errs[i] = fetch()
		}(i, fetch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			log.Error("analytics sub-fetch failed", err)
			return dto.Stats{}, fmt.Errorf("compute analytics: %w", err)
		}
	}

	revenue := sumFares(fares)

	return dto.Stats{
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		Window:            window,
		TotalDrivers:      totalDrivers,
		TotalRides:        totalRides,
		TotalUsers:        totalUsers,
		TotalRevenue:      revenue,
		TotalRevenueLabel: FormatCurrency(revenue),
		ActiveDrivers:     activeDrivers,
		RidesByStatus:     statusHistogram(statuses),
	}, nil
}

// windowSince maps a window selector to its inclusive lower bound, nil for
// all-time.
func windowSince(window string, now time.Time) (*time.Time, error) {
	switch window {
	case Window7d:
		t := now.AddDate(0, 0, -7)
		return &t, nil
	case Window30d:
		t := now.AddDate(0, 0, -30)
		return &t, nil
	case WindowAll, "":
		return nil, nil
	}
	return nil, fmt.Errorf("%w: %v", myerrors.ErrInvalidWindow, window)
}

// sumFares accumulates final fares starting at 0, skipping unset values.
func sumFares(fares []*float64) float64 {
	var total float64
	for _, f := range fares {
		if f != nil {
			total += *f
		}
	}
	return total
}

func statusHistogram(statuses []string) map[string]int {
	counts := make(map[string]int)
	for _, s := range statuses {
		counts[s]++
	}
	return counts
}

// FormatCurrency renders a dollar amount with grouping, e.g. "$1,234.50".
// Zero renders as "$0.00" rather than a blank.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(whole, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, b.String(), fracPart)
}
