package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

func TestLabelFormatter(t *testing.T) {
	day := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		locale   string
		dayLabel string
		decimal  string
	}{
		{name: "Moçambique", locale: "pt-MZ", dayLabel: "05/03", decimal: ",50"},
		{name: "Brasil", locale: "pt-BR", dayLabel: "05/03", decimal: ",50"},
		{name: "Estados Unidos", locale: "en-US", dayLabel: "03/05", decimal: ".50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := NewLabelFormatter(tt.locale)
			require.NoError(t, err)

			assert.Equal(t, tt.locale, labels.Locale())
			assert.Equal(t, tt.dayLabel, labels.DayLabel(day))
			assert.Contains(t, labels.Amount(decimal.RequireFromString("1234.5")), tt.decimal)
		})
	}
}

func TestLabelFormatter_HourLabel(t *testing.T) {
	labels := DefaultLabels()

	assert.Equal(t, "08:00", labels.HourLabel(8))
	assert.Equal(t, "00:00", labels.HourLabel(24))
	assert.Equal(t, "06:00", labels.HourLabel(30))
	assert.Equal(t, "23:00", labels.HourLabel(-1))
	assert.Equal(t, "13:05:09", labels.Clock(domain.ClockReading{Hour: 13, Minute: 5, Second: 9}))
}

func TestNewLabelFormatter_InvalidLocale(t *testing.T) {
	_, err := NewLabelFormatter("???")
	assert.Error(t, err)
}
