package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRefresh = "refresh"
	CronJobTypeStatus  = "status"
	CronJobTypeAll     = "all"
)

// CronJob é um agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DataRefreshService  CronJob
	StatusTickerService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRefresh:
			if services.DataRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de dados não disponível", nil)
				return
			}
			services.DataRefreshService.TriggerManualSync()

		case CronJobTypeStatus:
			if services.StatusTickerService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de estado de funcionamento não disponível", nil)
				return
			}
			services.StatusTickerService.TriggerManualSync()

		case CronJobTypeAll:
			if services.DataRefreshService != nil {
				services.DataRefreshService.TriggerManualSync()
			}
			if services.StatusTickerService != nil {
				services.StatusTickerService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: refresh, status, all", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DataRefreshService != nil {
			status[CronJobTypeRefresh] = services.DataRefreshService.GetStatus()
		}
		if services.StatusTickerService != nil {
			status[CronJobTypeStatus] = services.StatusTickerService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
