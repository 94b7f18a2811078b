package services

import (
	"context"
	"fmt"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/myerrors"
	"ride-hail-admin/internal/mylogger"
)

type RidesService struct {
	ctx          context.Context
	mylog        mylogger.Logger
	ridesRepo    ports.IRidesRepo
	profilesRepo ports.IProfilesRepo
	notifier     ports.IDashboardNotifier
	listLimit    int
}

func NewRidesService(ctx context.Context,
	mylog mylogger.Logger,
	ridesRepo ports.IRidesRepo,
	profilesRepo ports.IProfilesRepo,
	notifier ports.IDashboardNotifier,
	listLimit int,
) *RidesService {
	return &RidesService{
		ctx:          ctx,
		mylog:        mylog,
		ridesRepo:    ridesRepo,
		profilesRepo: profilesRepo,
		notifier:     notifier,
		listLimit:    listLimit,
	}
}

// List returns the most recently requested rides, optionally filtered by
// status, each annotated with the rider's profile.
func (rs *RidesService) List(ctx context.Context, status string) ([]dto.ReconciledRide, error) {
	log := rs.mylog.Action("ListRides")

	if status == "all" {
		status = ""
	}
	if status != "" && !model.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: %v", myerrors.ErrInvalidRideStatus, status)
	}

	rides, err := rs.ridesRepo.List(ctx, status, rs.listLimit)
	if err != nil {
		log.Error("cannot list rides", err)
		return nil, err
	}

	return reconcileRides(ctx, log, rs.profilesRepo, rides), nil
}

// Assign pairs a matching ride with a driver. Assignment is atomic with the
// status change: the ride enters accepted with driver_id and accepted_at set
// in one write. An empty driver id is rejected before any write is issued.
func (rs *RidesService) Assign(ctx context.Context, rideId, driverId string) error {
	log := rs.mylog.Action("AssignRide").With("ride_id", rideId)

	if driverId == "" {
		return myerrors.ErrNoDriverSelected
	}
	if err := validateId(rideId); err != nil {
		return err
	}
	if err := validateId(driverId); err != nil {
		return err
	}

	if err := rs.ridesRepo.Assign(ctx, rideId, driverId, time.Now().UTC()); err != nil {
		log.Error("cannot assign ride", err)
		return err
	}

	log.Info("ride assigned", "driver_id", driverId)
	rs.notifier.ListInvalidated("rides")
	return nil
}

// AdvanceStatus moves a ride along the status machine. The transition is
// validated against the status the operator saw; the write itself is
// optimistic and guarded only by a conditional update.
func (rs *RidesService) AdvanceStatus(ctx context.Context, rideId, from, to string) error {
	log := rs.mylog.Action("AdvanceRideStatus").With("ride_id", rideId)

	if err := validateId(rideId); err != nil {
		return err
	}
	if !model.IsValidStatus(from) || !model.IsValidStatus(to) {
		return fmt.Errorf("%w: %v -> %v", myerrors.ErrInvalidRideStatus, from, to)
	}
	if to == model.StatusAccepted {
		// accepted is only reachable through Assign, which carries the driver
		return myerrors.ErrNoDriverSelected
	}
	if !model.CanTransition(from, to) {
		return fmt.Errorf("%w: %v -> %v", myerrors.ErrInvalidTransition, from, to)
	}

	if err := rs.ridesRepo.UpdateStatus(ctx, rideId, from, to, time.Now().UTC()); err != nil {
		log.Error("cannot update ride status", err)
		return err
	}

	log.Info("ride status updated", "from", from, "to", to)
	rs.notifier.ListInvalidated("rides")
	return nil
}
