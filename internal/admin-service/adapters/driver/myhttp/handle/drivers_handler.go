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

type DriversHandler struct {
	driversService *services.DriversService
	mylog          mylogger.Logger
}

func NewDriversHandler(mylog mylogger.Logger, driversService *services.DriversService) *DriversHandler {
	return &DriversHandler{
		driversService: driversService,
		mylog:          mylog,
	}
}

func (dh *DriversHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		drivers, err := dh.driversService.List(ctx)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.DriverListResponse{Drivers: drivers, Total: len(drivers)})
	}
}

func (dh *DriversHandler) ListAvailable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		drivers, err := dh.driversService.ListAvailable(ctx)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.DriverListResponse{Drivers: drivers, Total: len(drivers)})
	}
}

func (dh *DriversHandler) Approve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		var req dto.ConfirmRequest
		if err := decodeBody(r, &req); err != nil {
			jsonError(w, http.StatusBadRequest, fmt.Errorf("failed to decode approve request: %v", err))
			return
		}

		if err := dh.driversService.Approve(ctx, r.PathValue("id"), req.Confirm); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{"status": "approved"})
	}
}

func (dh *DriversHandler) ToggleAvailability() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		var req dto.AvailabilityRequest
		if err := decodeBody(r, &req); err != nil {
			jsonError(w, http.StatusBadRequest, fmt.Errorf("failed to decode availability request: %v", err))
			return
		}

		if err := dh.driversService.ToggleAvailability(ctx, r.PathValue("id"), req.IsAvailable); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{"is_available": !req.IsAvailable})
	}
}

func (dh *DriversHandler) Remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		var req dto.ConfirmRequest
		if err := decodeBody(r, &req); err != nil {
			jsonError(w, http.StatusBadRequest, fmt.Errorf("failed to decode remove request: %v", err))
			return
		}

		if err := dh.driversService.Remove(ctx, r.PathValue("id"), req.Confirm); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{"status": "removed"})
	}
}
