package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/pharmacy-dashboard-api/internal/usecases/dashboard"
)

type HealthcheckResponse struct {
	Status    string `json:"status"`
	DataReady bool   `json:"data_ready"`
	Time      string `json:"time"`
}

// HealthcheckHandler responde sempre 200; data_ready indica se já há snapshot publicado
func HealthcheckHandler(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthcheckResponse{
			Status:    "ok",
			DataReady: service.Ready(),
			Time:      time.Now().Format(time.RFC3339),
		})
	})
}
