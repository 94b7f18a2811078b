package dto

import "ride-hail-admin/internal/admin-service/core/domain/model"

// ReconciledDriver annotates a driver row with its owning user profile.
// Profiles stays nil when no match was found; the row itself is never
// dropped because of a failed enrichment.
type ReconciledDriver struct {
	model.DriverProfile
	Profiles *model.UserProfile `json:"profiles"`
}

type DriverListResponse struct {
	Drivers []ReconciledDriver `json:"drivers"`
	Total   int                `json:"total"`
}

type AvailabilityRequest struct {
	// IsAvailable is the currently displayed value; the mutation flips it.
	IsAvailable bool `json:"is_available"`
}

type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}
