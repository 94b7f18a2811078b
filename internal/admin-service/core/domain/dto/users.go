package dto

import "ride-hail-admin/internal/admin-service/core/domain/model"

type UserFilters struct {
	// Role filters by exact role; empty or "all" means no filter.
	Role string
	// Search matches full_name or email, case-insensitively.
	Search string
	Limit  int
}

type UserListResponse struct {
	Users []model.UserProfile `json:"users"`
	Total int                 `json:"total"`
}

type ChangeRoleRequest struct {
	Role    string `json:"role"`
	Confirm bool   `json:"confirm"`
}
