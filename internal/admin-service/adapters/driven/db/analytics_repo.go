package db

import (
	"context"
	"fmt"
	"time"

	"ride-hail-admin/internal/admin-service/core/ports"
)

type AnalyticsRepo struct {
	db ports.IDB
}

func NewAnalyticsRepo(db ports.IDB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

func (ar *AnalyticsRepo) CountDrivers(ctx context.Context) (int, error) {
	return ar.count(ctx, `SELECT COUNT(*) FROM driver_profiles`)
}

func (ar *AnalyticsRepo) CountActiveDrivers(ctx context.Context) (int, error) {
	return ar.count(ctx, `SELECT COUNT(*) FROM driver_profiles WHERE is_active = true AND is_available = true`)
}

func (ar *AnalyticsRepo) CountUsers(ctx context.Context) (int, error) {
	return ar.count(ctx, `SELECT COUNT(*) FROM profiles`)
}

func (ar *AnalyticsRepo) CountRides(ctx context.Context, since *time.Time) (int, error) {
	if since == nil {
		return ar.count(ctx, `SELECT COUNT(*) FROM rides`)
	}
	return ar.count(ctx, `SELECT COUNT(*) FROM rides WHERE requested_at >= $1`, *since)
}

func (ar *AnalyticsRepo) FareFinals(ctx context.Context, since *time.Time) ([]*float64, error) {
	q := `SELECT fare_final FROM rides WHERE fare_final IS NOT NULL`
	args := []any{}
	if since != nil {
		q += ` AND requested_at >= $1`
		args = append(args, *since)
	}

	rows, err := ar.db.GetPool().Query(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryError("query fare finals", err)
	}
	defer rows.Close()

	fares := make([]*float64, 0)
	for rows.Next() {
		var fare *float64
		if err := rows.Scan(&fare); err != nil {
			return nil, fmt.Errorf("scan fare row: %w", err)
		}
		fares = append(fares, fare)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate fares", err)
	}
	return fares, nil
}

// RecentStatuses feeds the status histogram from a bounded sample of the
// most recent rides rather than a full-table aggregate.
func (ar *AnalyticsRepo) RecentStatuses(ctx context.Context, limit int) ([]string, error) {
	q := `SELECT status FROM rides ORDER BY requested_at DESC LIMIT $1`

	rows, err := ar.db.GetPool().Query(ctx, q, limit)
	if err != nil {
		return nil, wrapQueryError("query ride statuses", err)
	}
	defer rows.Close()

	statuses := make([]string, 0)
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return nil, fmt.Errorf("scan status row: %w", err)
		}
		statuses = append(statuses, status)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate statuses", err)
	}
	return statuses, nil
}

func (ar *AnalyticsRepo) count(ctx context.Context, q string, args ...any) (int, error) {
	var n int
	if err := ar.db.GetPool().QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, wrapQueryError("count query", err)
	}
	return n, nil
}
