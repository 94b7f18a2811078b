package model

import "time"

// DriverProfile is one row of driver_profiles, one-to-one with a UserProfile
// via UserId. IsAvailable is only meaningful while IsActive is true; the
// storage layer does not enforce that dependency.
type DriverProfile struct {
	Id            string    `json:"id"`
	UserId        string    `json:"user_id"`
	VehicleMake   string    `json:"vehicle_make"`
	VehicleModel  string    `json:"vehicle_model"`
	VehicleYear   string    `json:"vehicle_year"`
	VehicleColor  string    `json:"vehicle_color"`
	VehiclePlate  string    `json:"vehicle_plate"`
	LicenseNumber string    `json:"license_number"`
	IsActive      bool      `json:"is_active"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
}
