package db

import (
	"context"
	"fmt"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/myerrors"

	"github.com/jackc/pgx/v5"
)

const driverColumns = `
	d.id, d.user_id, d.vehicle_make, d.vehicle_model, d.vehicle_year,
	d.vehicle_color, d.vehicle_plate, d.license_number,
	d.is_active, d.is_available, d.created_at`

type DriversRepo struct {
	db ports.IDB
}

func NewDriversRepo(db ports.IDB) *DriversRepo {
	return &DriversRepo{db: db}
}

// ListJoined is the preferred path: one query with a LEFT JOIN on profiles.
// Any error here makes the service fall back to List plus reconciliation.
func (dr *DriversRepo) ListJoined(ctx context.Context) ([]dto.ReconciledDriver, error) {
	q := fmt.Sprintf(`
	SELECT %s,
		p.id, p.email, p.role, p.full_name, p.phone, p.created_at
	FROM driver_profiles d
	LEFT JOIN profiles p ON p.id = d.user_id
	ORDER BY d.created_at DESC
	`, driverColumns)

	rows, err := dr.db.GetPool().Query(ctx, q)
	if err != nil {
		return nil, wrapQueryError("query drivers joined", err)
	}
	defer rows.Close()

	drivers := make([]dto.ReconciledDriver, 0)
	for rows.Next() {
		var d dto.ReconciledDriver
		var (
			profileId, email, role *string
			fullName, phone        *string
			createdAt              *time.Time
		)
		err := rows.Scan(
			&d.Id, &d.UserId, &d.VehicleMake, &d.VehicleModel, &d.VehicleYear,
			&d.VehicleColor, &d.VehiclePlate, &d.LicenseNumber,
			&d.IsActive, &d.IsAvailable, &d.CreatedAt,
			&profileId, &email, &role, &fullName, &phone, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan joined driver row: %w", err)
		}
		if profileId != nil {
			d.Profiles = &model.UserProfile{
				Id:       *profileId,
				Email:    derefString(email),
				Role:     derefString(role),
				FullName: fullName,
				Phone:    phone,
			}
			if createdAt != nil {
				d.Profiles.CreatedAt = *createdAt
			}
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate joined drivers", err)
	}
	return drivers, nil
}

func (dr *DriversRepo) List(ctx context.Context) ([]model.DriverProfile, error) {
	q := fmt.Sprintf(`
	SELECT %s
	FROM driver_profiles d
	ORDER BY d.created_at DESC
	`, driverColumns)

	rows, err := dr.db.GetPool().Query(ctx, q)
	if err != nil {
		return nil, wrapQueryError("query drivers", err)
	}
	defer rows.Close()

	return scanDrivers(rows)
}

func (dr *DriversRepo) ListAvailable(ctx context.Context) ([]model.DriverProfile, error) {
	q := fmt.Sprintf(`
	SELECT %s
	FROM driver_profiles d
	WHERE d.is_active = true AND d.is_available = true
	ORDER BY d.created_at DESC
	`, driverColumns)

	rows, err := dr.db.GetPool().Query(ctx, q)
	if err != nil {
		return nil, wrapQueryError("query available drivers", err)
	}
	defer rows.Close()

	return scanDrivers(rows)
}

func (dr *DriversRepo) Approve(ctx context.Context, userId string) error {
	q := `UPDATE driver_profiles SET is_active = true WHERE user_id = $1`

	tag, err := dr.db.GetPool().Exec(ctx, q, userId)
	if err != nil {
		return wrapQueryError("approve driver", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}

func (dr *DriversRepo) SetAvailability(ctx context.Context, userId string, available bool) error {
	q := `UPDATE driver_profiles SET is_available = $2 WHERE user_id = $1`

	tag, err := dr.db.GetPool().Exec(ctx, q, userId, available)
	if err != nil {
		return wrapQueryError("update driver availability", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}

func (dr *DriversRepo) Delete(ctx context.Context, userId string) error {
	q := `DELETE FROM driver_profiles WHERE user_id = $1`

	tag, err := dr.db.GetPool().Exec(ctx, q, userId)
	if err != nil {
		return wrapQueryError("delete driver", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}

func scanDrivers(rows pgx.Rows) ([]model.DriverProfile, error) {
	drivers := make([]model.DriverProfile, 0)
	for rows.Next() {
		var d model.DriverProfile
		err := rows.Scan(
			&d.Id, &d.UserId, &d.VehicleMake, &d.VehicleModel, &d.VehicleYear,
			&d.VehicleColor, &d.VehiclePlate, &d.LicenseNumber,
			&d.IsActive, &d.IsAvailable, &d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan driver row: %w", err)
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate drivers", err)
	}
	return drivers, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
