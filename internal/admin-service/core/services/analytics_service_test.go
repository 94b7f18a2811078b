package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/myerrors"
)

type fakeAnalyticsRepo struct {
	drivers       int
	activeDrivers int
	users         int
	rides         int
	fares         []*float64
	statuses      []string

	faresErr  error
	gotSince  *time.Time
	gotSample int
}

func (f *fakeAnalyticsRepo) CountDrivers(ctx context.Context) (int, error) { return f.drivers, nil }
func (f *fakeAnalyticsRepo) CountActiveDrivers(ctx context.Context) (int, error) {
	return f.activeDrivers, nil
}
func (f *fakeAnalyticsRepo) CountUsers(ctx context.Context) (int, error) { return f.users, nil }

func (f *fakeAnalyticsRepo) CountRides(ctx context.Context, since *time.Time) (int, error) {
	f.gotSince = since
	return f.rides, nil
}

func (f *fakeAnalyticsRepo) FareFinals(ctx context.Context, since *time.Time) ([]*float64, error) {
	if f.faresErr != nil {
		return nil, f.faresErr
	}
	return f.fares, nil
}

func (f *fakeAnalyticsRepo) RecentStatuses(ctx context.Context, limit int) ([]string, error) {
	f.gotSample = limit
	return f.statuses, nil
}

func fare(v float64) *float64 { return &v }

func TestComputeAggregates(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		drivers:       4,
		activeDrivers: 2,
		users:         10,
		rides:         3,
		fares:         []*float64{fare(10), nil, fare(5)},
		statuses: []string{
			model.StatusCompleted, model.StatusCompleted, model.StatusMatching,
		},
	}
	svc := NewAnalyticsService(context.Background(), nopLogger{}, repo, 1000)

	stats, err := svc.Compute(context.Background(), Window7d)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if stats.TotalRevenue != 15 {
		t.Fatalf("revenue = %v, want 15 (nil fares count as zero)", stats.TotalRevenue)
	}
	if stats.TotalRevenueLabel != "$15.00" {
		t.Fatalf("revenue label = %q", stats.TotalRevenueLabel)
	}
	if stats.TotalDrivers != 4 || stats.ActiveDrivers != 2 || stats.TotalUsers != 10 || stats.TotalRides != 3 {
		t.Fatalf("counts wrong: %+v", stats)
	}
	if stats.RidesByStatus[model.StatusCompleted] != 2 || stats.RidesByStatus[model.StatusMatching] != 1 {
		t.Fatalf("histogram wrong: %v", stats.RidesByStatus)
	}
	if repo.gotSince == nil {
		t.Fatal("7d window must pass a lower bound")
	}
	if repo.gotSample != 1000 {
		t.Fatalf("histogram sample = %d, want 1000", repo.gotSample)
	}
}

func TestComputeFailsWhenAnySubFetchFails(t *testing.T) {
	repo := &fakeAnalyticsRepo{faresErr: errors.New("timeout")}
	svc := NewAnalyticsService(context.Background(), nopLogger{}, repo, 1000)

	stats, err := svc.Compute(context.Background(), WindowAll)
	if err == nil {
		t.Fatal("expected error when one sub-fetch fails")
	}
	if stats.TotalDrivers != 0 || stats.RidesByStatus != nil {
		t.Fatalf("partial stats returned on failure: %+v", stats)
	}
}

func TestComputeRejectsUnknownWindow(t *testing.T) {
	svc := NewAnalyticsService(context.Background(), nopLogger{}, &fakeAnalyticsRepo{}, 1000)

	_, err := svc.Compute(context.Background(), "90d")
	if !errors.Is(err, myerrors.ErrInvalidWindow) {
		t.Fatalf("err = %v, want ErrInvalidWindow", err)
	}
}

func TestWindowSince(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	since, err := windowSince(Window7d, now)
	if err != nil || since == nil || !since.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("7d since = %v, err = %v", since, err)
	}

	since, err = windowSince(Window30d, now)
	if err != nil || since == nil || !since.Equal(now.AddDate(0, 0, -30)) {
		t.Fatalf("30d since = %v, err = %v", since, err)
	}

	since, err = windowSince(WindowAll, now)
	if err != nil || since != nil {
		t.Fatalf("all since = %v, err = %v, want nil bound", since, err)
	}

	if _, err := windowSince("yesterday", now); !errors.Is(err, myerrors.ErrInvalidWindow) {
		t.Fatalf("err = %v, want ErrInvalidWindow", err)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{999.999, "$1,000.00"},
		{-42, "-$42.00"},
	}

	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
