package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

func maputo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := LoadLocation("Africa/Maputo")
	require.NoError(t, err)
	return loc
}

func interval(t *testing.T, start, end string) *domain.Interval {
	t.Helper()
	i, err := domain.NewInterval(start, end)
	require.NoError(t, err)
	return &i
}

func sale(id string, at time.Time, total int64) *domain.Sale {
	return &domain.Sale{
		ID:            id,
		Timestamp:     at,
		Total:         decimal.NewFromInt(total),
		PaymentMethod: domain.PaymentMethodCash,
	}
}

func stringPtr(s string) *string {
	return &s
}
