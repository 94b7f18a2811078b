package model

import "time"

const (
	StatusMatching   = "matching"
	StatusAccepted   = "accepted"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCanceled   = "canceled"
)

// Ride is one row of the rides table. The timestamp pointers are set exactly
// once, when the corresponding status transition happens.
type Ride struct {
	Id             string     `json:"id"`
	RiderId        string     `json:"rider_id"`
	DriverId       *string    `json:"driver_id"`
	Status         string     `json:"status"`
	PickupAddress  string     `json:"pickup_address"`
	DropoffAddress string     `json:"dropoff_address"`
	RequestedAt    time.Time  `json:"requested_at"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	AcceptedAt     *time.Time `json:"accepted_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CanceledAt     *time.Time `json:"canceled_at"`
	FareEstimate   *float64   `json:"fare_estimate"`
	FareFinal      *float64   `json:"fare_final"`
}

// transitions is the strict forward-moving ride state machine. Canceled is
// reachable from matching or accepted only; completed and canceled are
// terminal.
var transitions = map[string][]string{
	StatusMatching:   {StatusAccepted, StatusCanceled},
	StatusAccepted:   {StatusInProgress, StatusCanceled},
	StatusInProgress: {StatusCompleted},
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusMatching, StatusAccepted, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

func IsTerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusCanceled
}

func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ApplyTransition moves the ride to the target status and stamps the
// timestamp that belongs to it. Accepted additionally requires the driver
// assignment to already be present on the ride.
func (r *Ride) ApplyTransition(to string, at time.Time) bool {
	if !CanTransition(r.Status, to) {
		return false
	}
	switch to {
	case StatusAccepted:
		if r.DriverId == nil || *r.DriverId == "" {
			return false
		}
		r.AcceptedAt = &at
	case StatusCompleted:
		r.CompletedAt = &at
	case StatusCanceled:
		r.CanceledAt = &at
	}
	r.Status = to
	return true
}
