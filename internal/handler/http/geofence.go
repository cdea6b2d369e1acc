package http

import (
	"net/http"

	"github.com/restolab/staffpoint-backend-go/internal/handler/http/response"
	"github.com/restolab/staffpoint-backend-go/internal/service/geofence"
)

type GeofenceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
}

type geofenceHandlerImpl struct {
	monitor *geofence.Monitor
}

func NewGeofenceHandler(monitor *geofence.Monitor) GeofenceHandler {
	return &geofenceHandlerImpl{
		monitor: monitor,
	}
}

// Status returns the most recent geofence sample for the kiosk indicator.
func (h *geofenceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"status": string(h.monitor.Current()),
	})
}
