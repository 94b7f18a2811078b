package db

import (
	"context"
	"errors"
	"fmt"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/domain/model"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/myerrors"

	"github.com/jackc/pgx/v5"
)

type ProfilesRepo struct {
	db ports.IDB
}

func NewProfilesRepo(db ports.IDB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (pr *ProfilesRepo) GetById(ctx context.Context, id string) (*model.UserProfile, error) {
	q := `
	SELECT id, email, role, full_name, phone, created_at
	FROM profiles
	WHERE id = $1
	`

	var profile model.UserProfile
	err := pr.db.GetPool().QueryRow(ctx, q, id).Scan(
		&profile.Id,
		&profile.Email,
		&profile.Role,
		&profile.FullName,
		&profile.Phone,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, myerrors.ErrNotFound
		}
		return nil, wrapQueryError("query profile by id", err)
	}

	return &profile, nil
}

func (pr *ProfilesRepo) GetByIds(ctx context.Context, ids []string) ([]model.UserProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := `
	SELECT id, email, role, full_name, phone, created_at
	FROM profiles
	WHERE id = ANY($1)
	`

	rows, err := pr.db.GetPool().Query(ctx, q, ids)
	if err != nil {
		return nil, wrapQueryError("query profiles by ids", err)
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func (pr *ProfilesRepo) List(ctx context.Context, filters dto.UserFilters) ([]model.UserProfile, error) {
	where := ""
	args := []any{}
	argIndex := 1

	if filters.Role != "" {
		where += fmt.Sprintf(" AND role = $%d", argIndex)
		args = append(args, filters.Role)
		argIndex++
	}

	if filters.Search != "" {
		where += fmt.Sprintf(" AND (full_name ILIKE $%d OR email ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	args = append(args, filters.Limit)
	q := fmt.Sprintf(`
	SELECT id, email, role, full_name, phone, created_at
	FROM profiles
	WHERE 1=1 %s
	ORDER BY created_at DESC
	LIMIT $%d
	`, where, argIndex)

	rows, err := pr.db.GetPool().Query(ctx, q, args...)
	if err != nil {
		return nil, wrapQueryError("query profiles", err)
	}
	defer rows.Close()

	return scanProfiles(rows)
}

func (pr *ProfilesRepo) UpdateRole(ctx context.Context, id, role string) error {
	q := `UPDATE profiles SET role = $2 WHERE id = $1`

	tag, err := pr.db.GetPool().Exec(ctx, q, id, role)
	if err != nil {
		return wrapQueryError("update profile role", err)
	}
	if tag.RowsAffected() == 0 {
		return myerrors.ErrNotFound
	}
	return nil
}

func scanProfiles(rows pgx.Rows) ([]model.UserProfile, error) {
	profiles := make([]model.UserProfile, 0)
	for rows.Next() {
		var profile model.UserProfile
		err := rows.Scan(
			&profile.Id,
			&profile.Email,
			&profile.Role,
			&profile.FullName,
			&profile.Phone,
			&profile.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError("iterate profiles", err)
	}
	return profiles, nil
}
