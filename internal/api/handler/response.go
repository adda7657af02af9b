package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SalesPointResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type SalesSeriesResponse struct {
	Period domain.Period        `json:"period"`
	Points []SalesPointResponse `json:"points"`
	Total  float64              `json:"total"`
}

type StockAlertResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	MinStock  int    `json:"min_stock"`
}

type StockResponse struct {
	TotalProducts   int                  `json:"total_products"`
	LowStock        []StockAlertResponse `json:"low_stock"`
	OutOfStock      []StockAlertResponse `json:"out_of_stock"`
	CostValue       float64              `json:"cost_value"`
	RetailValue     float64              `json:"retail_value"`
	PotentialMargin float64              `json:"potential_margin"`
}

type PaymentMethodResponse struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type ProductSalesResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Amount    float64 `json:"amount"`
}

type TodayResponse struct {
	Date            string                  `json:"date"`
	Revenue         float64                 `json:"revenue"`
	RevenueLabel    string                  `json:"revenue_label"`
	SalesCount      int                     `json:"sales_count"`
	AverageTicket   float64                 `json:"average_ticket"`
	ByPaymentMethod []PaymentMethodResponse `json:"by_payment_method"`
	TopProducts     []ProductSalesResponse  `json:"top_products"`
}

type OverviewResponse struct {
	Status      *domain.BusinessStatus `json:"status"`
	Series      SalesSeriesResponse    `json:"series"`
	Stock       StockResponse          `json:"stock"`
	Today       TodayResponse          `json:"today"`
	Quote       domain.Quote           `json:"quote"`
	DataVersion int64                  `json:"data_version"`
	LoadedAt    string                 `json:"loaded_at"`
}

func money(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}

func toSeriesResponse(period domain.Period, points []domain.SalesPoint) SalesSeriesResponse {
	response := SalesSeriesResponse{
		Period: period,
		Points: make([]SalesPointResponse, 0, len(points)),
	}

	total := decimal.Zero
	for _, point := range points {
		response.Points = append(response.Points, SalesPointResponse{
			Label:  point.Label,
			Amount: money(point.Amount),
		})
		total = total.Add(point.Amount)
	}
	response.Total = money(total)

	return response
}

func toStockAlerts(alerts []domain.StockAlert) []StockAlertResponse {
	response := make([]StockAlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		response = append(response, StockAlertResponse(alert))
	}
	return response
}

func toStockResponse(summary *domain.StockSummary) StockResponse {
	return StockResponse{
		TotalProducts:   summary.TotalProducts,
		LowStock:        toStockAlerts(summary.LowStock),
		OutOfStock:      toStockAlerts(summary.OutOfStock),
		CostValue:       money(summary.CostValue),
		RetailValue:     money(summary.RetailValue),
		PotentialMargin: money(summary.PotentialMargin),
	}
}

func toTodayResponse(summary *domain.TodaySummary, labels dashboard.LabelFormatter) TodayResponse {
	response := TodayResponse{
		Date:            summary.Date,
		Revenue:         money(summary.Revenue),
		RevenueLabel:    labels.Amount(summary.Revenue),
		SalesCount:      summary.SalesCount,
		AverageTicket:   money(summary.AverageTicket),
		ByPaymentMethod: make([]PaymentMethodResponse, 0, len(summary.ByPaymentMethod)),
		TopProducts:     make([]ProductSalesResponse, 0, len(summary.TopProducts)),
	}

	for _, method := range summary.ByPaymentMethod {
		response.ByPaymentMethod = append(response.ByPaymentMethod, PaymentMethodResponse{
			Method: method.Method,
			Amount: money(method.Amount),
			Count:  method.Count,
		})
	}

	for _, product := range summary.TopProducts {
		response.TopProducts = append(response.TopProducts, ProductSalesResponse{
			ProductID: product.ProductID,
			Name:      product.Name,
			Quantity:  product.Quantity,
			Amount:    money(product.Amount),
		})
	}

	return response
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros do dashboard para o formato padrão da API
func writeServiceError(w http.ResponseWriter, err error, message string) {
	var dashboardErr *dashboard.DashboardError
	if errors.As(err, &dashboardErr) {
		apiErrors.WriteError(w, dashboardErr.Code, message, dashboardErr.Details)
		return
	}

	logrus.WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}
