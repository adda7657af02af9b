package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidClockTime indica um horário "HH:MM" que não pôde ser interpretado
var ErrInvalidClockTime = errors.New("horário inválido")

// TimeOfDay representa a hora do dia com minutos fracionários (hora + minuto/60), no intervalo [0,24)
type TimeOfDay float64

// NewTimeOfDay cria um TimeOfDay a partir de hora e minuto
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(float64(hour) + float64(minute)/60)
}

// Hour retorna a parte inteira da hora
func (t TimeOfDay) Hour() int {
	return int(t)
}

// String formata o horário como HH:MM
func (t TimeOfDay) String() string {
	totalMinutes := int(float64(t)*60 + 0.5)
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// ParseTimeOfDay interpreta um horário no formato "HH:MM".
// O componente de minutos é opcional ("8" e "08:" valem 08:00).
// "24:00" é aceito como fim do dia.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return 0, errors.Wrap(ErrInvalidClockTime, "valor vazio")
	}

	parts := strings.SplitN(raw, ":", 3)
	if len(parts) > 2 {
		return 0, errors.Wrapf(ErrInvalidClockTime, "formato inesperado %q", value)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidClockTime, "hora não numérica em %q", value)
	}

	minute := 0
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidClockTime, "minuto não numérico em %q", value)
		}
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, errors.Wrapf(ErrInvalidClockTime, "fora do intervalo em %q", value)
	}

	return NewTimeOfDay(hour, minute), nil
}

// Interval é um par início/fim de horários. Quando Start > End o intervalo atravessa a meia-noite.
type Interval struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// NewInterval interpreta os dois horários de um intervalo
func NewInterval(start, end string) (Interval, error) {
	startTime, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, errors.Wrap(err, "início do intervalo")
	}

	endTime, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, errors.Wrap(err, "fim do intervalo")
	}

	return Interval{Start: startTime, End: endTime}, nil
}

// Wraps indica se o intervalo atravessa a meia-noite
func (i Interval) Wraps() bool {
	return i.Start > i.End
}

// Contains aplica a regra de contenção: início inclusivo, fim exclusivo,
// com volta pela meia-noite quando Start > End
func (i Interval) Contains(t TimeOfDay) bool {
	if !i.Wraps() {
		return t >= i.Start && t < i.End
	}
	return t >= i.Start || t < i.End
}

// String formata o intervalo como HH:MM-HH:MM
func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}
