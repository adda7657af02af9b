package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_USER", "farmacia")
	t.Setenv("DATABASE_PASSWORD", "segredo")
	t.Setenv("DATABASE_URL", "db:5432/pharmacy?sslmode=disable")
	t.Setenv("DASHBOARD_COMPANY_ID", "CMP001")
	t.Setenv("DATA_REFRESH_INTERVAL_SECONDS", "45")
	t.Setenv("STATUS_TICKER_INTERVAL_SECONDS", "2")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://farmacia:segredo@db:5432/pharmacy?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "CMP001", cfg.Dashboard.CompanyID)
	assert.Equal(t, 45, cfg.DataRefresh.IntervalSeconds)
	assert.Equal(t, 2, cfg.StatusTicker.IntervalSeconds)
}

func TestConfig_normalize(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		validate func(t *testing.T, cfg Config)
	}{
		{
			name:   "Valores zerados recebem os padrões",
			config: Config{},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, 30, cfg.DataRefresh.IntervalSeconds)
				assert.Equal(t, 1, cfg.StatusTicker.IntervalSeconds)
				assert.Equal(t, 91, cfg.Dashboard.HistoryDays)
				assert.Equal(t, "Africa/Maputo", cfg.Dashboard.DefaultTimezone)
			},
		},
		{
			name: "Intervalo negativo é corrigido",
			config: Config{
				DataRefresh:  DataRefresh{IntervalSeconds: -5, Enabled: true},
				StatusTicker: StatusTicker{IntervalSeconds: -1},
			},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, 30, cfg.DataRefresh.IntervalSeconds)
				assert.Equal(t, 1, cfg.StatusTicker.IntervalSeconds)
				assert.True(t, cfg.DataRefresh.Enabled)
			},
		},
		{
			name: "Valores válidos são mantidos",
			config: Config{
				Dashboard:    Dashboard{DefaultTimezone: "Europe/Lisbon", HistoryDays: 15},
				DataRefresh:  DataRefresh{IntervalSeconds: 60},
				StatusTicker: StatusTicker{IntervalSeconds: 5},
			},
			validate: func(t *testing.T, cfg Config) {
				assert.Equal(t, 60, cfg.DataRefresh.IntervalSeconds)
				assert.Equal(t, 5, cfg.StatusTicker.IntervalSeconds)
				assert.Equal(t, 15, cfg.Dashboard.HistoryDays)
				assert.Equal(t, "Europe/Lisbon", cfg.Dashboard.DefaultTimezone)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config
			cfg.normalize()
			tt.validate(t, cfg)
		})
	}
}
