package dashboard

import (
	"time"

	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

// ActiveShift retorna o primeiro turno, na ordem configurada, que contém o horário.
// Retorna nil quando nenhum turno contém o horário.
func ActiveShift(shifts []domain.ScheduledShift, timeVal domain.TimeOfDay) *domain.ScheduledShift {
	for i := range shifts {
		if shifts[i].Interval.Contains(timeVal) {
			shift := shifts[i]
			return &shift
		}
	}
	return nil
}

// IsOpen decide se a farmácia está aberta. O horário de funcionamento explícito tem
// precedência; sem ele, a farmácia está aberta se houver um turno ativo.
func IsOpen(opening *domain.Interval, timeVal domain.TimeOfDay, fallback *domain.ScheduledShift) bool {
	if opening != nil {
		return opening.Contains(timeVal)
	}
	return fallback != nil
}

// EvaluateStatus combina a leitura do relógio com o perfil da empresa
func EvaluateStatus(profile *domain.BusinessProfile, reading domain.ClockReading, sampledAt time.Time) domain.BusinessStatus {
	timeVal := reading.TimeOfDay()

	status := domain.BusinessStatus{
		Source:        domain.StatusSourceNone,
		Clock:         reading.String(),
		Timezone:      reading.Timezone,
		TimeOfDay:     timeVal,
		ClockFallback: reading.Fallback,
		SampledAt:     sampledAt,
	}

	if profile == nil {
		return status
	}

	active := ActiveShift(profile.Shifts, timeVal)
	status.Open = IsOpen(profile.Opening, timeVal, active)

	switch {
	case profile.Opening != nil:
		status.Source = domain.StatusSourceBusinessHours
	case len(profile.Shifts) > 0:
		status.Source = domain.StatusSourceShifts
	}

	if active != nil {
		status.ShiftName = active.Shift.Name
		status.ShiftLabel = active.Shift.DisplayLabel()
	}

	return status
}
