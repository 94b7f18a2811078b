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

type RidesHandler struct {
	ridesService *services.RidesService
	mylog        mylogger.Logger
}

func NewRidesHandler(mylog mylogger.Logger, ridesService *services.RidesService) *RidesHandler {
	return &RidesHandler{
		ridesService: ridesService,
		mylog:        mylog,
	}
}

func (rh *RidesHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		rides, err := rh.ridesService.List(ctx, r.URL.Query().Get("status"))
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.RideListResponse{Rides: rides, Total: len(rides)})
	}
}

func (rh *RidesHandler) Assign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		var req dto.AssignRideRequest
		if err := decodeBody(r, &req); err != nil {
			jsonError(w, http.StatusBadRequest, fmt.Errorf("failed to decode assign request: %v", err))
			return
		}

		if err := rh.ridesService.Assign(ctx, r.PathValue("id"), req.DriverId); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{"status": "accepted"})
	}
}

func (rh *RidesHandler) AdvanceStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		var req dto.RideStatusRequest
		if err := decodeBody(r, &req); err != nil {
			jsonError(w, http.StatusBadRequest, fmt.Errorf("failed to decode status request: %v", err))
			return
		}

		if err := rh.ridesService.AdvanceStatus(ctx, r.PathValue("id"), req.From, req.To); err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, map[string]interface{}{"status": req.To})
	}
}
