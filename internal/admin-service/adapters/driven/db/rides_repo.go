package db

import (
	"context"
	"fmt"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/myerrors"
)

type RidesRepo struct {
	db ports.IDB
}

func NewRidesRepo(db ports.IDB) *RidesRepo {
	return &RidesRepo{db: db}
}

func (rr *RidesRepo) List(ctx context.Context, status string, limit int) ([]model.Ride, error) {
	where := ""
	args := []any{}
	argIndex := 1

	if status != "" {
		where = fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	args = append(args, limit)
	q := fmt.Sprintf(`
	SELECT id, rider_id, driver_id, status, pickup_address, dropoff_address,
		requested_at, scheduled_at, accepted_at, completed_at, canceled_at,
		fare_estimate, fare_final
	FROM rides
	WHERE 1=1 %s
	ORDER BY requested_at DESC
	LIMIT $%d
	`, where, argIndex)

	rows, err := rr.db.GetPool().Query(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryError("query rides", err)
	}
	defer rows.Close()

	rides := make([]model.Ride, 0)
	for rows.Next() {
		var r model.Ride
		err := rows.Scan(
			&r.Id, &r.RiderId, &r.DriverId, &r.Status, &r.PickupAddress, &r.DropoffAddress,
			&r.RequestedAt, &r.ScheduledAt, &r.AcceptedAt, &r.CompletedAt, &r.CanceledAt,
			&r.FareEstimate, &r.FareFinal,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ride row: %w", err)
		}
		rides = append(rides, r)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate rides", err)
	}
	return rides, nil
}

// Assign pairs the ride with a driver atomically with the status change: a
// ride cannot enter accepted without a driver. The guard on the current
// status makes the optimistic write a no-op when another operator won.
func (rr *RidesRepo) Assign(ctx context.Context, rideId, driverId string, at time.Time) error {
	q := `
	UPDATE rides
	SET driver_id = $2, status = $3, accepted_at = $4
	WHERE id = $1 AND status = $5
	`

	tag, err := rr.db.GetPool().Exec(ctx, q, rideId, driverId, model.StatusAccepted, at, model.StatusMatching)
	if err != nil {
		return wrapQueryError("assign ride", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}

func (rr *RidesRepo) UpdateStatus(ctx context.Context, rideId, from, to string, at time.Time) error {
	set := "status = $2"
	args := []any{rideId, to}

	// completed and canceled stamp their timestamp exactly once, with the
	// transition that reaches them
	switch to {
	case model.StatusCompleted:
		set += ", completed_at = $3"
		args = append(args, at)
	case model.StatusCanceled:
		set += ", canceled_at = $3"
		args = append(args, at)
	}

	args = append(args, from)
	q := fmt.Sprintf(`
	UPDATE rides
	SET %s
	WHERE id = $1 AND status = $%d
	`, set, len(args))

	tag, err := rr.db.GetPool().Exec(ctx, q, args...)
	if err != nil {
		return wrapQueryError("update ride status", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}
