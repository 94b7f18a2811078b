package dto

// Stats is the aggregation result for one analytics window.
type Stats struct {
	Timestamp         string         `json:"timestamp"`
	Window            string         `json:"window"`
	TotalDrivers      int            `json:"total_drivers"`
	TotalRides        int            `json:"total_rides"`
	TotalUsers        int            `json:"total_users"`
	TotalRevenue      float64        `json:"total_revenue"`
	TotalRevenueLabel string         `json:"total_revenue_label"`
	ActiveDrivers     int            `json:"active_drivers"`
	RidesByStatus     map[string]int `json:"rides_by_status"`
}
