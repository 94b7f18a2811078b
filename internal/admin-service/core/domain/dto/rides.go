package dto

import "ride-hail-admin/internal/admin-service/core/domain/model"

// ReconciledRide annotates a ride with the rider's user profile, nil when
// the enrichment found no match.
type ReconciledRide struct {
	model.Ride
	Profiles *model.UserProfile `json:"profiles"`
}

type RideListResponse struct {
	Rides []ReconciledRide `json:"rides"`
	Total int              `json:"total"`
}

type AssignRideRequest struct {
	DriverId string `json:"driver_id"`
}

type RideStatusRequest struct {
	// From is the status currently displayed to the operator. The write is
	// optimistic: it is guarded against From, never revalidated first.
	From string `json:"from"`
	To   string `json:"to"`
}
