package services

import (
	"context"
	"fmt"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/myerrors"
	"ride-hail-admin/internal/mylogger"

	"github.com/google/uuid"
)

type DriversService struct {
	ctx          context.Context
	mylog        mylogger.Logger
	driversRepo  ports.IDriversRepo
	profilesRepo ports.IProfilesRepo
	notifier     ports.IDashboardNotifier
}

func NewDriversService(ctx context.Context,
	mylog mylogger.Logger,
	driversRepo ports.IDriversRepo,
	profilesRepo ports.IProfilesRepo,
	notifier ports.IDashboardNotifier,
) *DriversService {
	return &DriversService{
		ctx:          ctx,
		mylog:        mylog,
		driversRepo:  driversRepo,
		profilesRepo: profilesRepo,
		notifier:     notifier,
	}
}

// List returns every driver annotated with its user profile. The server-side
// join is attempted first; any join error falls back transparently to the
// fetch-and-merge path. Only a failure of the fallback itself surfaces.
func (ds *DriversService) List(ctx context.Context) ([]dto.ReconciledDriver, error) {
	log := ds.mylog.Action("ListDrivers")

	joined, err := ds.driversRepo.ListJoined(ctx)
	if err == nil {
		return joined, nil
	}
	log.Warn("join query failed, falling back to separate queries", "error", err.Error())

	drivers, err := ds.driversRepo.List(ctx)
	if err != nil {
		log.Error("cannot list drivers", err)
		return nil, err
	}

	return reconcileDrivers(ctx, log, ds.profilesRepo, drivers), nil
}

// ListAvailable returns dispatch-eligible drivers (is_active and
// is_available) for ride assignment.
func (ds *DriversService) ListAvailable(ctx context.Context) ([]dto.ReconciledDriver, error) {
	log := ds.mylog.Action("ListAvailableDrivers")

	drivers, err := ds.driversRepo.ListAvailable(ctx)
	if err != nil {
		log.Error("cannot list available drivers", err)
		return nil, err
	}

	return reconcileDrivers(ctx, log, ds.profilesRepo, drivers), nil
}

func (ds *DriversService) Approve(ctx context.Context, userId string, confirmed bool) error {
	log := ds.mylog.Action("ApproveDriver").With("user_id", userId)

	if !confirmed {
		return myerrors.ErrConfirmationRequired
	}
	if err := validateId(userId); err != nil {
		return err
	}

	if err := ds.driversRepo.Approve(ctx, userId); err != nil {
		log.Error("cannot approve driver", err)
		return err
	}

	log.Info("driver approved")
	ds.notifier.ListInvalidated("drivers")
	return nil
}

// ToggleAvailability flips the dispatch-eligibility flag. The current value
// comes from the operator's last fetch; last write wins at the storage layer.
func (ds *DriversService) ToggleAvailability(ctx context.Context, userId string, current bool) error {
	log := ds.mylog.Action("ToggleDriverAvailability").With("user_id", userId)

	if err := validateId(userId); err != nil {
		return err
	}

	if err := ds.driversRepo.SetAvailability(ctx, userId, !current); err != nil {
		log.Error("cannot update driver availability", err)
		return err
	}

	ds.notifier.ListInvalidated("drivers")
	return nil
}

func (ds *DriversService) Remove(ctx context.Context, userId string, confirmed bool) error {
	log := ds.mylog.Action("RemoveDriver").With("user_id", userId)

	if !confirmed {
		return myerrors.ErrConfirmationRequired
	}
	if err := validateId(userId); err != nil {
		return err
	}

	if err := ds.driversRepo.Delete(ctx, userId); err != nil {
		log.Error("cannot remove driver", err)
		return err
	}

	log.Info("driver removed")
	ds.notifier.ListInvalidated("drivers")
	return nil
}

func validateId(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %v", myerrors.ErrInvalidId, id)
	}
	return nil
}
