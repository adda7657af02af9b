package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/apiErrors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type QuickActionRequest struct {
	View   string `json:"view"`
	Action string `json:"action"`
}

// parsePeriod lê o período da query string; ausente vale o período diário
func parsePeriod(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	period, err := domain.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido", map[string]any{
			"accepted": domain.AllPeriods(),
		})
		return "", false
	}
	return period, true
}

// GetBusinessStatus retorna o estado de funcionamento atual
func GetBusinessStatus(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Status(time.Now()))
	}
}

// GetSalesSeries retorna a série de vendas do período informado
func GetSalesSeries(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		points, err := service.SalesSeries(period, time.Now())
		if err != nil {
			writeServiceError(w, err, "Erro ao montar a série de vendas")
			return
		}

		writeJSON(w, http.StatusOK, toSeriesResponse(period, points))
	}
}

// ExportSalesSeries exporta a série de vendas do período em XLSX
func ExportSalesSeries(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		now := time.Now()
		points, err := service.SalesSeries(period, now)
		if err != nil {
			writeServiceError(w, err, "Erro ao montar a série de vendas")
			return
		}

		content, err := exportSeriesXLSX(period, points)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar a planilha da série de vendas")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar a planilha", nil)
			return
		}

		filename := fmt.Sprintf("vendas-%s-%s.xlsx", period, now.Format(time.DateOnly))
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(content); err != nil {
			logrus.WithError(err).Error("Erro ao enviar a planilha")
		}
	}
}

// GetOverview retorna todos os blocos da tela principal
func GetOverview(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, ok := parsePeriod(w, r)
		if !ok {
			return
		}

		overview, err := service.Overview(period, time.Now())
		if err != nil {
			writeServiceError(w, err, "Erro ao montar o dashboard")
			return
		}

		writeJSON(w, http.StatusOK, OverviewResponse{
			Status:      overview.Status,
			Series:      toSeriesResponse(overview.Period, overview.Series),
			Stock:       toStockResponse(overview.Stock),
			Today:       toTodayResponse(overview.Today, service.Labels()),
			Quote:       overview.Quote,
			DataVersion: overview.DataVersion,
			LoadedAt:    overview.LoadedAt.Format(time.RFC3339),
		})
	}
}

// GetStock retorna o resumo do estoque
func GetStock(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stock, err := service.Stock()
		if err != nil {
			writeServiceError(w, err, "Erro ao montar o resumo do estoque")
			return
		}

		writeJSON(w, http.StatusOK, toStockResponse(stock))
	}
}

// GetToday retorna o caixa do dia
func GetToday(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		today, err := service.Today(time.Now())
		if err != nil {
			writeServiceError(w, err, "Erro ao montar o caixa do dia")
			return
		}

		writeJSON(w, http.StatusOK, toTodayResponse(today, service.Labels()))
	}
}

// GetQuote retorna a frase do dia
func GetQuote(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Quote(time.Now()))
	}
}

// PostQuickAction encaminha um pedido de navegação
func PostQuickAction(service dashboard.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request QuickActionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		navigation, err := service.QuickAction(r.Context(), request.View, request.Action)
		if err != nil {
			writeServiceError(w, err, "Erro ao encaminhar a ação rápida")
			return
		}

		writeJSON(w, http.StatusAccepted, navigation)
	}
}
