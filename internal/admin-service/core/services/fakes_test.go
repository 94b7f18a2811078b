package services

import (
	"context"
	"sync"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/myerrors"
	"ride-hail-admin/internal/mylogger"
)

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)            {}
func (nopLogger) Info(msg string, args ...any)             {}
func (nopLogger) Warn(msg string, args ...any)             {}
func (nopLogger) Error(msg string, err error, args ...any) {}
func (n nopLogger) Action(action string) mylogger.Logger   { return n }
func (n nopLogger) With(args ...any) mylogger.Logger       { return n }
func (n nopLogger) WithGroup(name string) mylogger.Logger  { return n }

type fakeProfilesRepo struct {
	mu         sync.Mutex
	profiles   []model.UserProfile
	err        error
	gotIds     []string
	gotFilters dto.UserFilters
}

func (f *fakeProfilesRepo) GetById(ctx context.Context, id string) (*model.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.Id == id {
			profile := p
			return &profile, nil
		}
	}
	return nil, myerrors.ErrNotFound
}

func (f *fakeProfilesRepo) GetByIds(ctx context.Context, ids []string) ([]model.UserProfile, error) {
	f.mu.Lock()
	f.gotIds = ids
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles, nil
}

func (f *fakeProfilesRepo) List(ctx context.Context, filters dto.UserFilters) ([]model.UserProfile, error) {
	f.mu.Lock()
	f.gotFilters = filters
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles, nil
}

func (f *fakeProfilesRepo) UpdateRole(ctx context.Context, id, role string) error {
	return f.err
}

type fakeNotifier struct {
	mu          sync.Mutex
	revoked     []string
	invalidated []string
}

func (f *fakeNotifier) SessionRevoked(userId string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, userId)
}

func (f *fakeNotifier) ListInvalidated(list string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, list)
}

func (f *fakeNotifier) lists() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.invalidated...)
}

type rideRepoCall struct {
	op       string
	rideId   string
	driverId string
	from     string
	to       string
}

type fakeRidesRepo struct {
	rides []model.Ride
	err   error
	calls []rideRepoCall
}

func (f *fakeRidesRepo) List(ctx context.Context, status string, limit int) ([]model.Ride, error) {
	f.calls = append(f.calls, rideRepoCall{op: "list", from: status})
	if f.err != nil {
		return nil, f.err
	}
	return f.rides, nil
}

func (f *fakeRidesRepo) Assign(ctx context.Context, rideId, driverId string, at time.Time) error {
	f.calls = append(f.calls, rideRepoCall{op: "assign", rideId: rideId, driverId: driverId})
	return f.err
}

func (f *fakeRidesRepo) UpdateStatus(ctx context.Context, rideId, from, to string, at time.Time) error {
	f.calls = append(f.calls, rideRepoCall{op: "update_status", rideId: rideId, from: from, to: to})
	return f.err
}

type fakeDriversRepo struct {
	joined    []dto.ReconciledDriver
	joinedErr error
	drivers   []model.DriverProfile
	err       error
	calls     []string
}

func (f *fakeDriversRepo) ListJoined(ctx context.Context) ([]dto.ReconciledDriver, error) {
	f.calls = append(f.calls, "list_joined")
	if f.joinedErr != nil {
		return nil, f.joinedErr
	}
	return f.joined, nil
}

func (f *fakeDriversRepo) List(ctx context.Context) ([]model.DriverProfile, error) {
	f.calls = append(f.calls, "list")
	if f.err != nil {
		return nil, f.err
	}
	return f.drivers, nil
}

func (f *fakeDriversRepo) ListAvailable(ctx context.Context) ([]model.DriverProfile, error) {
	f.calls = append(f.calls, "list_available")
	if f.err != nil {
		return nil, f.err
	}
	return f.drivers, nil
}

func (f *fakeDriversRepo) Approve(ctx context.Context, userId string) error {
	f.calls = append(f.calls, "approve")
	return f.err
}

func (f *fakeDriversRepo) SetAvailability(ctx context.Context, userId string, available bool) error {
	f.calls = append(f.calls, "set_availability")
	return f.err
}

func (f *fakeDriversRepo) Delete(ctx context.Context, userId string) error {
	f.calls = append(f.calls, "delete")
	return f.err
}
