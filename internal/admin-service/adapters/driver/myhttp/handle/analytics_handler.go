package handle

import (
	"context"
	"net/http"
	"time"

	"ride-hail-admin/internal/admin-service/core/services"
	"ride-hail-admin/internal/mylogger"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	mylog            mylogger.Logger
}

func NewAnalyticsHandler(mylog mylogger.Logger, analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		mylog:            mylog,
	}
}

func (ah *AnalyticsHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		window := r.URL.Query().Get("window")
		if window == "" {
			window = services.Window7d
		}

		stats, err := ah.analyticsService.Compute(ctx, window)
		if err != nil {
			serviceError(w, err)
			return
		}

		jsonResponse(w, http.StatusOK, stats)
	}
}
