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

type AuthHandler struct {
	sessionService *services.SessionService
	store          *services.SessionStore
	mylog          mylogger.Logger
}

func NewAuthHandler(mylog mylogger.Logger, sessionService *services.SessionService, store *services.SessionStore) *AuthHandler {
	return &AuthHandler{
		sessionService: sessionService,
		store:          store,
		mylog:          mylog,
	}
}

func (ah *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		var req dto.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			jsonError(w, http.StatusBadRequest, fmt.Errorf("failed to decode login request: %v", err))
			return
		}

		token, profile, err := ah.sessionService.Login(ctx, req)
		if err != nil {
			serviceError(w, err)
			return
		}

		// seat the session so /auth/me reads come from the store
		if err := ah.store.Refresh(ctx, profile.Id); err != nil {
			ah.mylog.Action("Login").Error("failed to seat session", err)
		}

		jsonResponse(w, http.StatusOK, dto.LoginResponse{Token: token, User: profile})
	}
}

// Me resolves the caller's identity from the session store. A cache miss
// triggers one re-resolution before reporting the session as gone.
func (ah *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		userId := r.Header.Get("X-UserId")

		profile, ok := ah.store.Current(userId)
		if !ok {
			if err := ah.store.Refresh(ctx, userId); err != nil {
				serviceError(w, err)
				return
			}
			profile, ok = ah.store.Current(userId)
		}
		if !ok {
			jsonError(w, http.StatusUnauthorized, fmt.Errorf("session no longer valid"))
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{"user": profile})
	}
}

func (ah *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		userId := r.Header.Get("X-UserId")

		if err := ah.sessionService.Logout(ctx, userId); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{"status": "signed_out"})
	}
}
