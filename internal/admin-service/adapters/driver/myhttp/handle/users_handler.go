package handle

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ride-hail-admin/internal/admin-service/core/domain/dto"
	"ride-hail-admin/internal/admin-service/core/services"
	"ride-hail-admin/internal/mylogger"
)

type UsersHandler struct {
	usersService *services.UsersService
	mylog        mylogger.Logger
}

func NewUsersHandler(mylog mylogger.Logger, usersService *services.UsersService) *UsersHandler {
	return &UsersHandler{
		usersService: usersService,
		mylog:        mylog,
	}
}

func (uh *UsersHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		filters := dto.UserFilters{
			Role:   r.URL.Query().Get("role"),
			Search: r.URL.Query().Get("q"),
		}

		users, err := uh.usersService.List(ctx, filters)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.UserListResponse{Users: users, Total: len(users)})
	}
}

type changeRoleRequest struct {
	Role    string `json:"role"`
	Confirm bool   `json:"confirm"`
}

func (uh *UsersHandler) ChangeRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		var req changeRoleRequest
		if err := decodeBody(r, &req); err != nil {
			jsonError(w, http.StatusBadRequest, fmt.Errorf("failed to decode role request: %v", err))
			return
		}

		if err := uh.usersService.ChangeRole(ctx, r.PathValue("id"), req.Role, req.Confirm); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{"role": req.Role})
	}
}
