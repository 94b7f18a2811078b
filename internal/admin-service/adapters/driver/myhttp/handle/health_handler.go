package handle

import (
	"net/http"

	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/mylogger"
)

type HealthHandler struct {
	db     ports.IDB
	broker ports.ISessionBroker
	mylog  mylogger.Logger
}

func NewHealthHandler(mylog mylogger.Logger, db ports.IDB, broker ports.ISessionBroker) *HealthHandler {
	return &HealthHandler{
		db:     db,
		broker: broker,
		mylog:  mylog,
	}
}

func (hh *HealthHandler) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbAlive := hh.db.IsAlive() == nil
		brokerAlive := hh.broker.IsAlive()

		code := http.StatusOK
		if !dbAlive || !brokerAlive {
			code = http.StatusServiceUnavailable
		}

		jsonResponse(w, code, map[string]interface{}{
			"db":       dbAlive,
			"rabbitmq": brokerAlive,
		})
	}
}
