package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

func TestNormalizeCompany(t *testing.T) {
	tests := []struct {
		name     string
		info     *domain.CompanyInfo
		validate func(t *testing.T, profile *domain.BusinessProfile)
	}{
		{
			name: "Configuração completa",
			info: &domain.CompanyInfo{
				ID:          "CMP001",
				Name:        "Farmácia Central",
				Timezone:    "Africa/Maputo",
				OpeningTime: stringPtr("08:00"),
				ClosingTime: stringPtr("20:00"),
				Shifts: []domain.Shift{
					{Name: "Tarde", StartTime: "13:00", EndTime: "20:00", Position: 2},
					{Name: "Manhã", StartTime: "08:00", EndTime: "14:00", Position: 1},
				},
			},
			validate: func(t *testing.T, profile *domain.BusinessProfile) {
				assert.Equal(t, "CMP001", profile.CompanyID)
				assert.Equal(t, "Africa/Maputo", profile.Timezone)
				require.NotNil(t, profile.Opening)
				assert.Equal(t, "08:00-20:00", profile.Opening.String())
				require.Len(t, profile.Shifts, 2)
				assert.Equal(t, "Manhã", profile.Shifts[0].Shift.Name)
				assert.Equal(t, "Tarde", profile.Shifts[1].Shift.Name)
				assert.Empty(t, profile.Issues)
			},
		},
		{
			name: "Fuso ausente usa o padrão sem registrar problema",
			info: &domain.CompanyInfo{ID: "CMP002"},
			validate: func(t *testing.T, profile *domain.BusinessProfile) {
				assert.Equal(t, "Africa/Maputo", profile.Timezone)
				assert.Nil(t, profile.Opening)
				assert.Empty(t, profile.Issues)
			},
		},
		{
			name: "Fuso inválido usa o padrão e registra problema",
			info: &domain.CompanyInfo{ID: "CMP003", Timezone: "Mars/Olympus"},
			validate: func(t *testing.T, profile *domain.BusinessProfile) {
				assert.Equal(t, "Africa/Maputo", profile.Timezone)
				assert.Len(t, profile.Issues, 1)
			},
		},
		{
			name: "Horário incompleto é ignorado",
			info: &domain.CompanyInfo{ID: "CMP004", OpeningTime: stringPtr("08:00")},
			validate: func(t *testing.T, profile *domain.BusinessProfile) {
				assert.Nil(t, profile.Opening)
				assert.Len(t, profile.Issues, 1)
			},
		},
		{
			name: "Horário inválido é ignorado",
			info: &domain.CompanyInfo{ID: "CMP005", OpeningTime: stringPtr("8h"), ClosingTime: stringPtr("20:00")},
			validate: func(t *testing.T, profile *domain.BusinessProfile) {
				assert.Nil(t, profile.Opening)
				assert.Len(t, profile.Issues, 1)
			},
		},
		{
			name: "Turno inválido é descartado",
			info: &domain.CompanyInfo{
				ID: "CMP006",
				Shifts: []domain.Shift{
					{Name: "Manhã", StartTime: "08:00", EndTime: "14:00"},
					{Name: "Quebrado", StartTime: "xx", EndTime: "14:00"},
				},
			},
			validate: func(t *testing.T, profile *domain.BusinessProfile) {
				require.Len(t, profile.Shifts, 1)
				assert.Equal(t, "Manhã", profile.Shifts[0].Shift.Name)
				assert.Len(t, profile.Issues, 1)
			},
		},
		{
			name: "Configuração ausente",
			info: nil,
			validate: func(t *testing.T, profile *domain.BusinessProfile) {
				assert.Equal(t, "Africa/Maputo", profile.Timezone)
				assert.Empty(t, profile.Shifts)
				assert.Len(t, profile.Issues, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, NormalizeCompany(tt.info, "Africa/Maputo"))
		})
	}
}

func TestNormalizeCompany_CustomDefaultTimezone(t *testing.T) {
	profile := NormalizeCompany(&domain.CompanyInfo{ID: "CMP001"}, "Europe/Lisbon")
	assert.Equal(t, "Europe/Lisbon", profile.Timezone)

	profile = NormalizeCompany(&domain.CompanyInfo{ID: "CMP001"}, "")
	assert.Equal(t, domain.DefaultTimezone, profile.Timezone)
}
