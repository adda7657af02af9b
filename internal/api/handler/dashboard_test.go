package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/apiErrors"
	"github.com/xuri/excelize/v2"
)

type failingForwarder struct{}

func (failingForwarder) Forward(context.Context, *domain.NavigationRequest) error {
	return errors.New("destino indisponível")
}

func stringPtr(s string) *string {
	return &s
}

func newDashboardRouter(t *testing.T, loaded bool, forwarder dashboard.NavigationForwarder) http.Handler {
	t.Helper()

	store := dashboard.NewSnapshotStore()
	if loaded {
		profile := dashboard.NormalizeCompany(&domain.CompanyInfo{
			ID:          "CMP001",
			Name:        "Farmácia Central",
			Timezone:    "Africa/Maputo",
			OpeningTime: stringPtr("08:00"),
			ClosingTime: stringPtr("20:00"),
		}, "Africa/Maputo")

		sales := []*domain.Sale{
			{ID: "S1", Timestamp: time.Now().AddDate(0, 0, -2), Total: decimal.NewFromInt(300), PaymentMethod: domain.PaymentMethodCash},
		}
		products := []*domain.Product{
			{ID: "P1", Name: "Paracetamol", Quantity: 0, MinStock: 5, PurchasePrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(15)},
		}
		store.Publish(profile, sales, products, time.Now())
	}

	service := dashboard.NewService(store, dashboard.Options{DefaultTimezone: "Africa/Maputo", Forwarder: forwarder})
	return router.New(router.WithRoutes(Dashboard(service)...))
}

func decodeAPIError(t *testing.T, body *bytes.Buffer) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(body).Decode(&apiErr))
	return apiErr
}

func TestGetBusinessStatus(t *testing.T) {
	rt := newDashboardRouter(t, true, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/status", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var status domain.BusinessStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "Africa/Maputo", status.Timezone)
	assert.Equal(t, domain.StatusSourceBusinessHours, status.Source)
	assert.Len(t, status.Clock, 8)
}

func TestGetSalesSeries(t *testing.T) {
	tests := []struct {
		name       string
		loaded     bool
		query      string
		wantStatus int
		wantCode   string
		wantPoints int
	}{
		{name: "Período diário por padrão", loaded: true, query: "", wantStatus: http.StatusOK, wantPoints: 13},
		{name: "Janela de 15 dias", loaded: true, query: "?period=15days", wantStatus: http.StatusOK, wantPoints: 16},
		{name: "Janela de 3 meses", loaded: true, query: "?period=3months", wantStatus: http.StatusOK, wantPoints: 91},
		{name: "Período inválido", loaded: true, query: "?period=weekly", wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidRequest},
		{name: "Dados ainda não carregados", loaded: false, query: "?period=daily", wantStatus: http.StatusServiceUnavailable, wantCode: apiErrors.ErrDataNotReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newDashboardRouter(t, tt.loaded, nil)

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/sales"+tt.query, nil)
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec.Body).Code)
				return
			}

			var response SalesSeriesResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			assert.Len(t, response.Points, tt.wantPoints)
		})
	}
}

func TestGetSalesSeries_MultiDayTotal(t *testing.T) {
	rt := newDashboardRouter(t, true, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/sales?period=15days", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response SalesSeriesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, domain.Period15Days, response.Period)
	assert.Equal(t, 300.0, response.Total)
}

func TestExportSalesSeries(t *testing.T) {
	rt := newDashboardRouter(t, true, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/sales/export?period=15days", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), `attachment; filename="vendas-15days-`))

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Vendas")
	require.NoError(t, err)
	require.Len(t, rows, 18) // cabeçalho + 16 baldes + total
	assert.Equal(t, []string{"Período", "Rótulo", "Valor"}, rows[0])
	assert.Equal(t, "Total", rows[17][1])
	assert.Equal(t, "300", rows[17][2])
}

func TestGetOverview(t *testing.T) {
	rt := newDashboardRouter(t, true, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview?period=1month", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response OverviewResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Len(t, response.Series.Points, 31)
	assert.Equal(t, int64(1), response.DataVersion)
	assert.Len(t, response.Stock.OutOfStock, 1)
	assert.NotEmpty(t, response.Quote.Text)
}

func TestGetStock_NotReady(t *testing.T) {
	rt := newDashboardRouter(t, false, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stock", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrDataNotReady, decodeAPIError(t, rec.Body).Code)
}

func TestGetQuote(t *testing.T) {
	rt := newDashboardRouter(t, false, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/quote", nil)
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var quote domain.Quote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&quote))
	assert.NotEmpty(t, quote.Text)
}

func TestPostQuickAction(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		forwarder  dashboard.NavigationForwarder
		wantStatus int
		wantCode   string
	}{
		{name: "Pedido aceito", body: `{"view":"sales","action":"new"}`, wantStatus: http.StatusAccepted},
		{name: "JSON inválido", body: `{"view":`, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidFormat},
		{name: "View ausente", body: `{"action":"new"}`, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrMissingRequiredData},
		{name: "Falha no destino", body: `{"view":"sales"}`, forwarder: failingForwarder{}, wantStatus: http.StatusBadGateway, wantCode: apiErrors.ErrExternalService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newDashboardRouter(t, true, tt.forwarder)

			req := httptest.NewRequest(http.MethodPost, "/v1/dashboard/quick-actions", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec.Body).Code)
				return
			}

			var navigation domain.NavigationRequest
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&navigation))
			assert.Len(t, navigation.ID, 6)
			assert.Equal(t, "sales", navigation.View)
			assert.Equal(t, "new", navigation.Action)
		})
	}
}
