package ports

import (
	"context"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IDB interface {
	GetPool() *pgxpool.Pool
	IsAlive() error
	Close() error
}

type IAccountsRepo interface {
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
}

type IProfilesRepo interface {
	GetById(ctx context.Context, id string) (*model.UserProfile, error)
	// GetByIds is the bulk lookup behind profile reconciliation.
	GetByIds(ctx context.Context, ids []string) ([]model.UserProfile, error)
	List(ctx context.Context, filters dto.UserFilters) ([]model.UserProfile, error)
	UpdateRole(ctx context.Context, id, role string) error
}

type IDriversRepo interface {
	// ListJoined is the preferred server-side join path; callers must fall
	// back to List + reconciliation on any error it returns.
	ListJoined(ctx context.Context) ([]dto.ReconciledDriver, error)
	List(ctx context.Context) ([]model.DriverProfile, error)
	ListAvailable(ctx context.Context) ([]model.DriverProfile, error)
	Approve(ctx context.Context, userId string) error
	SetAvailability(ctx context.Context, userId string, available bool) error
	Delete(ctx context.Context, userId string) error
}

type IRidesRepo interface {
	List(ctx context.Context, status string, limit int) ([]model.Ride, error)
	// Assign sets driver_id, status and accepted_at in a single conditional
	// update guarded on status = matching.
	Assign(ctx context.Context, rideId, driverId string, at time.Time) error
	// UpdateStatus is an optimistic write guarded on status = from.
	UpdateStatus(ctx context.Context, rideId, from, to string, at time.Time) error
}

type IAnalyticsRepo interface {
	CountDrivers(ctx context.Context) (int, error)
	CountActiveDrivers(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	CountRides(ctx context.Context, since *time.Time) (int, error)
	// FareFinals returns the fare_final values in the window; unset fares
	// may appear as nil entries and count as zero.
	FareFinals(ctx context.Context, since *time.Time) ([]*float64, error)
	// RecentStatuses returns the status column of the most recent rides,
	// capped to limit rows.
	RecentStatuses(ctx context.Context, limit int) ([]string, error)
}
