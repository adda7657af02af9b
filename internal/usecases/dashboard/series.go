package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

// Janela horária usada quando a empresa não configura horário de funcionamento
const (
	defaultOpeningHour = 8
	defaultClosingHour = 20
)

var defaultLabels = DefaultLabels()

// SeriesResult é a série calculada junto com a contabilidade das vendas consideradas
type SeriesResult struct {
	Points       []domain.SalesPoint
	Counted      int             // vendas somadas em algum balde
	Dropped      int             // vendas dentro da janela sem balde correspondente
	CountedTotal decimal.Decimal // soma dos totais das vendas contadas
}

// SeriesBuilder monta a série de vendas do gráfico. A agregação usa chaves de
// calendário; o formatador só é usado para gerar os rótulos.
type SeriesBuilder struct {
	Labels LabelFormatter
}

func NewSeriesBuilder(labels LabelFormatter) SeriesBuilder {
	return SeriesBuilder{Labels: labels}
}

// BuildSeries monta a série com o formatador padrão
func BuildSeries(period domain.Period, sales []*domain.Sale, opening *domain.Interval, now time.Time) []domain.SalesPoint {
	return NewSeriesBuilder(defaultLabels).Build(period, sales, opening, now).Points
}

// Build monta a série para a janela selecionada. As vendas são convertidas para o
// fuso de now antes de serem agrupadas.
func (b SeriesBuilder) Build(period domain.Period, sales []*domain.Sale, opening *domain.Interval, now time.Time) SeriesResult {
	if period.Days() == 0 {
		return b.buildDaily(sales, opening, now)
	}
	return b.buildMultiDay(period.Days(), sales, now)
}

// DailyHours retorna a primeira e a última hora (inclusivas) dos baldes diários.
// Um fechamento depois da meia-noite estende a última hora em 24; se a janela
// continuar invertida, usa o dia inteiro [0, 23].
func DailyHours(opening *domain.Interval) (int, int) {
	startHour, endHour := defaultOpeningHour, defaultClosingHour

	if opening != nil {
		startHour = opening.Start.Hour()
		endHour = opening.End.Hour()
		if endHour == 24 {
			endHour = 23
		}
	}

	if endHour < startHour {
		endHour += 24
	}

	if startHour > endHour {
		return 0, 23
	}

	return startHour, endHour
}

func (b SeriesBuilder) buildDaily(sales []*domain.Sale, opening *domain.Interval, now time.Time) SeriesResult {
	startHour, endHour := DailyHours(opening)

	result := SeriesResult{
		Points:       make([]domain.SalesPoint, 0, endHour-startHour+1),
		CountedTotal: decimal.Zero,
	}

	// hora do dia -> primeiro balde com essa hora
	bucketByHour := make(map[int]int, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		hour := h % 24
		result.Points = append(result.Points, domain.SalesPoint{
			Label:  b.Labels.HourLabel(hour),
			Amount: decimal.Zero,
		})
		if _, exists := bucketByHour[hour]; !exists {
			bucketByHour[hour] = len(result.Points) - 1
		}
	}

	today := dayKeyOf(now)
	for _, sale := range sales {
		if sale == nil {
			continue
		}

		local := sale.Timestamp.In(now.Location())
		if dayKeyOf(local) != today {
			continue
		}

		idx, ok := bucketByHour[local.Hour()]
		if !ok {
			result.Dropped++
			continue
		}

		result.add(idx, sale.Total)
	}

	return result
}

func (b SeriesBuilder) buildMultiDay(days int, sales []*domain.Sale, now time.Time) SeriesResult {
	startDate := now.AddDate(0, 0, -days)

	result := SeriesResult{
		Points:       make([]domain.SalesPoint, 0, days+1),
		CountedTotal: decimal.Zero,
	}

	// A ordem de inicialização é a ordem definitiva da série
	bucketByDay := make(map[dayKey]int, days+1)
	for i := 0; i <= days; i++ {
		day := startDate.AddDate(0, 0, i)
		result.Points = append(result.Points, domain.SalesPoint{
			Label:  b.Labels.DayLabel(day),
			Amount: decimal.Zero,
		})
		bucketByDay[dayKeyOf(day)] = i
	}

	for _, sale := range sales {
		if sale == nil || sale.Timestamp.Before(startDate) {
			continue
		}

		idx, ok := bucketByDay[dayKeyOf(sale.Timestamp.In(now.Location()))]
		if !ok {
			result.Dropped++
			continue
		}

		result.add(idx, sale.Total)
	}

	return result
}

func (r *SeriesResult) add(idx int, total decimal.Decimal) {
	r.Points[idx].Amount = r.Points[idx].Amount.Add(total)
	r.CountedTotal = r.CountedTotal.Add(total)
	r.Counted++
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func dayKeyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{year: y, month: m, day: d}
}
