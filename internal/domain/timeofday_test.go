package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected TimeOfDay
		wantErr  bool
	}{
		{name: "Hora e minuto", value: "08:30", expected: 8.5},
		{name: "Meia-noite", value: "00:00", expected: 0},
		{name: "Minutos ausentes", value: "8", expected: 8},
		{name: "Minutos vazios", value: "08:", expected: 8},
		{name: "Espaços ao redor", value: " 13:15 ", expected: 13.25},
		{name: "Fim do dia", value: "24:00", expected: 24},
		{name: "Vazio", value: "", wantErr: true},
		{name: "Hora fora do intervalo", value: "25:00", wantErr: true},
		{name: "24 com minutos", value: "24:30", wantErr: true},
		{name: "Minuto fora do intervalo", value: "10:60", wantErr: true},
		{name: "Hora negativa", value: "-1:00", wantErr: true},
		{name: "Texto", value: "abc", wantErr: true},
		{name: "Segundos", value: "10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimeOfDay(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidClockTime))
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, float64(tt.expected), float64(result), 1e-9)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "08:30", NewTimeOfDay(8, 30).String())
	assert.Equal(t, "23:59", NewTimeOfDay(23, 59).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, 13, NewTimeOfDay(13, 45).Hour())
}

func TestInterval_Contains(t *testing.T) {
	daytime, err := NewInterval("08:00", "20:00")
	require.NoError(t, err)

	overnight, err := NewInterval("22:00", "06:00")
	require.NoError(t, err)

	tests := []struct {
		name     string
		interval Interval
		time     TimeOfDay
		expected bool
	}{
		{name: "Diurno - antes da abertura", interval: daytime, time: NewTimeOfDay(7, 59), expected: false},
		{name: "Diurno - na abertura", interval: daytime, time: NewTimeOfDay(8, 0), expected: true},
		{name: "Diurno - meio do dia", interval: daytime, time: NewTimeOfDay(13, 30), expected: true},
		{name: "Diurno - no fechamento", interval: daytime, time: NewTimeOfDay(20, 0), expected: false},
		{name: "Noturno - antes da abertura", interval: overnight, time: NewTimeOfDay(21, 59), expected: false},
		{name: "Noturno - na abertura", interval: overnight, time: NewTimeOfDay(22, 0), expected: true},
		{name: "Noturno - madrugada", interval: overnight, time: NewTimeOfDay(3, 0), expected: true},
		{name: "Noturno - no fechamento", interval: overnight, time: NewTimeOfDay(6, 0), expected: false},
		{name: "Noturno - meio do dia", interval: overnight, time: NewTimeOfDay(12, 0), expected: false},
		{name: "Intervalo vazio", interval: Interval{Start: 8, End: 8}, time: 8, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.interval.Contains(tt.time))
		})
	}

	assert.False(t, daytime.Wraps())
	assert.True(t, overnight.Wraps())
	assert.Equal(t, "22:00-06:00", overnight.String())
}

func TestNewInterval_InvalidBoundary(t *testing.T) {
	_, err := NewInterval("08:00", "99:00")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidClockTime))
	assert.Contains(t, err.Error(), "fim do intervalo")
}
