package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/apiErrors"
)

type recordingForwarder struct {
	requests []*domain.NavigationRequest
	err      error
}

func (f *recordingForwarder) Forward(_ context.Context, request *domain.NavigationRequest) error {
	f.requests = append(f.requests, request)
	return f.err
}

func publishedService(t *testing.T, forwarder NavigationForwarder) (Dashboarder, *SnapshotStore) {
	t.Helper()
	loc := maputo(t)

	profile := NormalizeCompany(&domain.CompanyInfo{
		ID:          "CMP001",
		Name:        "Farmácia Central",
		Timezone:    "Africa/Maputo",
		OpeningTime: stringPtr("08:00"),
		ClosingTime: stringPtr("20:00"),
	}, "Africa/Maputo")

	sales := []*domain.Sale{
		sale("S1", time.Date(2024, 3, 15, 9, 15, 0, 0, loc), 120),
		sale("S2", time.Date(2024, 3, 2, 10, 0, 0, 0, loc), 500),
	}
	products := []*domain.Product{
		{ID: "P1", Name: "Paracetamol", Quantity: 2, MinStock: 5, PurchasePrice: decimal.NewFromInt(10), SalePrice: decimal.NewFromInt(15)},
	}

	store := NewSnapshotStore()
	store.Publish(profile, sales, products, time.Date(2024, 3, 15, 12, 0, 0, 0, loc))

	return NewService(store, Options{DefaultTimezone: "Africa/Maputo", TopProducts: 5, Forwarder: forwarder}), store
}

func TestService_NotReady(t *testing.T) {
	service := NewService(NewSnapshotStore(), Options{})
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.False(t, service.Ready())

	_, err := service.SalesSeries(domain.PeriodDaily, now)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSnapshotNotReady))

	var dashboardErr *DashboardError
	require.True(t, errors.As(err, &dashboardErr))
	assert.Equal(t, apiErrors.ErrDataNotReady, dashboardErr.Code)

	_, err = service.Overview(domain.PeriodDaily, now)
	assert.True(t, errors.Is(err, ErrSnapshotNotReady))

	_, err = service.Stock()
	assert.True(t, errors.Is(err, ErrSnapshotNotReady))

	_, err = service.Today(now)
	assert.True(t, errors.Is(err, ErrSnapshotNotReady))

	status := service.Status(now)
	assert.False(t, status.Open)
	assert.Equal(t, domain.StatusSourceNone, status.Source)
	assert.Equal(t, domain.DefaultTimezone, status.Timezone)
}

func TestService_SalesSeries(t *testing.T) {
	service, _ := publishedService(t, nil)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) // 14:00 em Maputo

	daily, err := service.SalesSeries(domain.PeriodDaily, now)
	require.NoError(t, err)
	require.Len(t, daily, 13)
	assert.True(t, decimal.NewFromInt(120).Equal(daily[1].Amount))

	fortnight, err := service.SalesSeries(domain.Period15Days, now)
	require.NoError(t, err)
	require.Len(t, fortnight, 16)
	assert.True(t, decimal.NewFromInt(500).Equal(fortnight[2].Amount))

	_, err = service.SalesSeries(domain.Period("weekly"), now)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestService_Overview(t *testing.T) {
	service, store := publishedService(t, nil)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	require.True(t, service.Ready())

	overview, err := service.Overview(domain.Period15Days, now)
	require.NoError(t, err)

	assert.True(t, overview.Status.Open)
	assert.Equal(t, domain.StatusSourceBusinessHours, overview.Status.Source)
	assert.Equal(t, "14:00:00", overview.Status.Clock)
	assert.Len(t, overview.Series, 16)
	assert.Equal(t, 1, overview.Today.SalesCount)
	assert.Len(t, overview.Stock.LowStock, 1)
	assert.Equal(t, store.Current().Version, overview.DataVersion)
	assert.NotEmpty(t, overview.Quote.Text)
}

func TestService_StatusAfterClosing(t *testing.T) {
	service, _ := publishedService(t, nil)

	status := service.Status(time.Date(2024, 3, 15, 19, 30, 0, 0, time.UTC)) // 21:30 em Maputo
	assert.False(t, status.Open)
	assert.Equal(t, "Africa/Maputo", status.Timezone)
	assert.False(t, status.ClockFallback)
}

func TestService_QuickAction(t *testing.T) {
	tests := []struct {
		name      string
		view      string
		action    string
		forwarder *recordingForwarder
		wantErr   error
	}{
		{name: "Encaminha o pedido", view: "sales", action: "new", forwarder: &recordingForwarder{}},
		{name: "Ação vazia é permitida", view: "stock", forwarder: &recordingForwarder{}},
		{name: "View obrigatória", view: "  ", action: "new", forwarder: &recordingForwarder{}, wantErr: ErrInvalidQuickAction},
		{name: "Falha no encaminhamento", view: "sales", action: "new", forwarder: &recordingForwarder{err: errors.New("fila cheia")}, wantErr: ErrNavigationForward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := publishedService(t, tt.forwarder)

			request, err := service.QuickAction(context.Background(), tt.view, tt.action)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			assert.Len(t, request.ID, 6)
			assert.Equal(t, tt.view, request.View)
			assert.Equal(t, tt.action, request.Action)
			require.Len(t, tt.forwarder.requests, 1)
			assert.Equal(t, request.ID, tt.forwarder.requests[0].ID)
		})
	}
}

func TestSnapshotStore(t *testing.T) {
	store := NewSnapshotStore()
	assert.Nil(t, store.Current())
	assert.Nil(t, store.LastStatus())

	first := store.Publish(&domain.BusinessProfile{}, nil, nil, time.Now())
	second := store.Publish(&domain.BusinessProfile{}, nil, nil, time.Now())
	assert.Equal(t, int64(1), first.Version)
	assert.Equal(t, int64(2), second.Version)
	assert.Same(t, second, store.Current())

	previous := store.SetStatus(domain.BusinessStatus{Open: true})
	assert.Nil(t, previous)

	previous = store.SetStatus(domain.BusinessStatus{Open: false})
	require.NotNil(t, previous)
	assert.True(t, previous.Open)
	assert.False(t, store.LastStatus().Open)
}
