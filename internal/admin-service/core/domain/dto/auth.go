package dto

import "ride-hail-admin/internal/admin-service/core/domain/model"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  *model.UserProfile `json:"user"`
}
