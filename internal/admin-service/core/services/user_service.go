package services

import (
	"context"
	"fmt"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/myerrors"
	"ride-hail-admin/internal/mylogger"
)

type UsersService struct {
	ctx          context.Context
	mylog        mylogger.Logger
	profilesRepo ports.IProfilesRepo
	notifier     ports.IDashboardNotifier
	listLimit    int
	debouncer    *Debouncer
	guard        *FetchGuard
}

func NewUsersService(ctx context.Context,
	mylog mylogger.Logger,
	profilesRepo ports.IProfilesRepo,
	notifier ports.IDashboardNotifier,
	listLimit int,
	debouncer *Debouncer,
) *UsersService {
	return &UsersService{
		ctx:          ctx,
		mylog:        mylog,
		profilesRepo: profilesRepo,
		notifier:     notifier,
		listLimit:    listLimit,
		debouncer:    debouncer,
		guard:        &FetchGuard{},
	}
}

func (us *UsersService) List(ctx context.Context, filters dto.UserFilters) ([]model.UserProfile, error) {
	log := us.mylog.Action("ListUsers")

	if filters.Role == "all" {
		filters.Role = ""
	}
	if filters.Role != "" && !model.IsValidRole(filters.Role) {
		return nil, fmt.Errorf("%w: %v", myerrors.ErrInvalidRole, filters.Role)
	}
	if filters.Limit <= 0 || filters.Limit > us.listLimit {
		filters.Limit = us.listLimit
	}

	users, err := us.profilesRepo.List(ctx, filters)
	if err != nil {
		log.Error("cannot list users", err)
		return nil, err
	}

	return users, nil
}

// SearchDebounced coalesces rapid search-term edits into at most one query
// per debounce interval and discards results that a newer search has already
// superseded.
func (us *UsersService) SearchDebounced(filters dto.UserFilters, emit func([]model.UserProfile, error)) {
	us.debouncer.Trigger(func() {
		gen := us.guard.Next()
		users, err := us.List(us.ctx, filters)
		if !us.guard.Latest(gen) {
			us.mylog.Action("SearchUsers").Debug("stale search response discarded")
			return
		}
		emit(users, err)
	})
}

func (us *UsersService) ChangeRole(ctx context.Context, userId, role string, confirmed bool) error {
	log := us.mylog.Action("ChangeUserRole").With("user_id", userId)

	if !confirmed {
		return myerrors.ErrConfirmationRequired
	}
	if err := validateId(userId); err != nil {
		return err
	}
	if !model.IsValidRole(role) {
		return fmt.Errorf("%w: %v", myerrors.ErrInvalidRole, role)
	}

	if err := us.profilesRepo.UpdateRole(ctx, userId, role); err != nil {
		log.Error("cannot update user role", err)
		return err
	}

	log.Info("user role updated", "role", role)
	us.notifier.ListInvalidated("users")
	return nil
}
