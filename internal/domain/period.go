package domain

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidPeriod indica uma janela de tempo desconhecida
var ErrInvalidPeriod = errors.New("período inválido")

// Period é a janela de tempo selecionada para o gráfico de vendas
type Period string

const (
	PeriodDaily     Period = "daily"
	Period15Days    Period = "15days"
	Period1Month    Period = "1month"
	Period3Months   Period = "3months"
	defaultPeriod          = PeriodDaily
	periodSeparator        = ", "
)

// AllPeriods retorna as janelas na ordem de exibição
func AllPeriods() []Period {
	return []Period{PeriodDaily, Period15Days, Period1Month, Period3Months}
}

// Days retorna o tamanho da janela em dias (0 para a janela diária)
func (p Period) Days() int {
	switch p {
	case Period15Days:
		return 15
	case Period1Month:
		return 30
	case Period3Months:
		return 90
	default:
		return 0
	}
}

// IsDaily indica se a janela é agrupada por hora
func (p Period) IsDaily() bool {
	return p == PeriodDaily
}

// ParsePeriod converte o parâmetro recebido em um Period. Vazio equivale a "daily".
func ParsePeriod(value string) (Period, error) {
	raw := strings.ToLower(strings.TrimSpace(value))
	if raw == "" {
		return defaultPeriod, nil
	}

	for _, p := range AllPeriods() {
		if string(p) == raw {
			return p, nil
		}
	}

	return "", errors.Wrapf(ErrInvalidPeriod, "%q (valores aceitos: %s)", value, periodNames())
}

func periodNames() string {
	names := make([]string, 0, len(AllPeriods()))
	for _, p := range AllPeriods() {
		names = append(names, string(p))
	}
	return strings.Join(names, periodSeparator)
}
