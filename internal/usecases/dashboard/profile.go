package dashboard

import (
	"fmt"
	"sort"

	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

// NormalizeCompany valida a configuração da empresa uma única vez, na fronteira.
// Fuso ausente ou inválido vira defaultTimezone; horário de funcionamento só é usado
// quando abertura e fechamento existem e são válidos; turnos inválidos são descartados.
// Cada ajuste fica registrado em Issues.
func NormalizeCompany(info *domain.CompanyInfo, defaultTimezone string) *domain.BusinessProfile {
	if defaultTimezone == "" {
		defaultTimezone = domain.DefaultTimezone
	}

	profile := &domain.BusinessProfile{
		Timezone: defaultTimezone,
		Shifts:   []domain.ScheduledShift{},
	}

	if info == nil {
		profile.Issues = append(profile.Issues, "configuração da empresa ausente")
		return profile
	}

	profile.CompanyID = info.ID
	profile.CompanyName = info.Name
	profile.Timezone = normalizeTimezone(info.Timezone, defaultTimezone, profile)
	profile.Opening = normalizeOpening(info.OpeningTime, info.ClosingTime, profile)
	profile.Shifts = normalizeShifts(info.Shifts, profile)

	return profile
}

func normalizeTimezone(timezone, defaultTimezone string, profile *domain.BusinessProfile) string {
	if timezone == "" {
		return defaultTimezone
	}

	if _, err := LoadLocation(timezone); err != nil {
		profile.Issues = append(profile.Issues, fmt.Sprintf("fuso horário %q inválido, usando %s", timezone, defaultTimezone))
		return defaultTimezone
	}

	return timezone
}

func normalizeOpening(opening, closing *string, profile *domain.BusinessProfile) *domain.Interval {
	hasOpening := opening != nil && *opening != ""
	hasClosing := closing != nil && *closing != ""

	if !hasOpening && !hasClosing {
		return nil
	}

	if hasOpening != hasClosing {
		profile.Issues = append(profile.Issues, "horário de funcionamento incompleto, usando os turnos")
		return nil
	}

	interval, err := domain.NewInterval(*opening, *closing)
	if err != nil {
		profile.Issues = append(profile.Issues, fmt.Sprintf("horário de funcionamento inválido (%v), usando os turnos", err))
		return nil
	}

	return &interval
}

func normalizeShifts(shifts []domain.Shift, profile *domain.BusinessProfile) []domain.ScheduledShift {
	ordered := make([]domain.Shift, len(shifts))
	copy(ordered, shifts)

	// A ordem de configuração decide empates entre turnos sobrepostos
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	scheduled := make([]domain.ScheduledShift, 0, len(ordered))
	for _, shift := range ordered {
		interval, err := domain.NewInterval(shift.StartTime, shift.EndTime)
		if err != nil {
			profile.Issues = append(profile.Issues, fmt.Sprintf("turno %q ignorado: %v", shift.Name, err))
			continue
		}

		scheduled = append(scheduled, domain.ScheduledShift{
			Shift:    shift,
			Interval: interval,
		})
	}

	return scheduled
}
