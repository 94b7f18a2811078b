package services

import (
	"context"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/mylogger"
)

// ownerIds collects the distinct non-empty ids in first-appearance order.
func ownerIds(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// profilesById bulk-fetches the given profiles and indexes them by id,
// keeping the first match per id. Enrichment is best-effort: any failure is
// logged and an empty index returned, so callers annotate rows with nil
// profiles instead of hiding them from the administrator.
func profilesById(ctx context.Context, mylog mylogger.Logger, profilesRepo ports.IProfilesRepo, ids []string) map[string]model.UserProfile {
	index := make(map[string]model.UserProfile, len(ids))
	if len(ids) == 0 {
		return index
	}

	profiles, err := profilesRepo.GetByIds(ctx, ids)
	if err != nil {
		mylog.Action("profile_enrichment_failed").Warn("bulk profile fetch failed, rows kept without profiles", "error", err.Error())
		return index
	}

	for _, p := range profiles {
		if _, ok := index[p.Id]; ok {
			continue
		}
		index[p.Id] = p
	}
	return index
}

// reconcileDrivers left-merges user profiles into driver rows. The result
// has the same length and order as the input; unmatched rows carry a nil
// profile.
func reconcileDrivers(ctx context.Context, mylog mylogger.Logger, profilesRepo ports.IProfilesRepo, drivers []model.DriverProfile) []dto.ReconciledDriver {
	ids := make([]string, 0, len(drivers))
	for _, d := range drivers {
		ids = append(ids, d.UserId)
	}

	index := profilesById(ctx, mylog, profilesRepo, ownerIds(ids))

	out := make([]dto.ReconciledDriver, 0, len(drivers))
	for _, d := range drivers {
		view := dto.ReconciledDriver{DriverProfile: d}
		if p, ok := index[d.UserId]; ok {
			profile := p
			view.Profiles = &profile
		}
		out = append(out, view)
	}
	return out
}

// reconcileRides left-merges rider profiles into ride rows, same contract as
// reconcileDrivers.
func reconcileRides(ctx context.Context, mylog mylogger.Logger, profilesRepo ports.IProfilesRepo, rides []model.Ride) []dto.ReconciledRide {
	ids := make([]string, 0, len(rides))
	for _, r := range rides {
		ids = append(ids, r.RiderId)
	}

	index := profilesById(ctx, mylog, profilesRepo, ownerIds(ids))

	out := make([]dto.ReconciledRide, 0, len(rides))
	for _, r := range rides {
		view := dto.ReconciledRide{Ride: r}
		if p, ok := index[r.RiderId]; ok {
			profile := p
			view.Profiles = &profile
		}
		out = append(out, view)
	}
	return out
}
