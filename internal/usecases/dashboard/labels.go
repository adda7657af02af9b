package dashboard

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale é o locale usado nos rótulos quando nenhum é configurado
const DefaultLocale = "pt-MZ"

// Regiões que escrevem o mês antes do dia
var monthFirstRegions = map[string]bool{
	"US": true,
	"PH": true,
}

// LabelFormatter concentra toda a formatação dependente de locale dos rótulos do dashboard
type LabelFormatter struct {
	tag        language.Tag
	monthFirst bool
	printer    *message.Printer
}

// NewLabelFormatter cria um formatador para o locale BCP 47 informado (ex.: "pt-MZ", "en-US")
func NewLabelFormatter(locale string) (LabelFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return LabelFormatter{}, errors.Wrapf(err, "locale inválido %q", locale)
	}

	region, _ := tag.Region()

	return LabelFormatter{
		tag:        tag,
		monthFirst: monthFirstRegions[region.String()],
		printer:    message.NewPrinter(tag),
	}, nil
}

// DefaultLabels retorna o formatador do locale padrão
func DefaultLabels() LabelFormatter {
	labels, err := NewLabelFormatter(DefaultLocale)
	if err != nil {
		panic(err)
	}
	return labels
}

// Locale retorna o locale do formatador
func (f LabelFormatter) Locale() string {
	return f.tag.String()
}

// HourLabel formata o rótulo de um balde horário como "HH:00" (hora módulo 24)
func (f LabelFormatter) HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", ((hour%24)+24)%24)
}

// DayLabel formata o rótulo de um balde diário como dia/mês (ou mês/dia, conforme a região)
func (f LabelFormatter) DayLabel(t time.Time) string {
	if f.monthFirst {
		return fmt.Sprintf("%02d/%02d", int(t.Month()), t.Day())
	}
	return fmt.Sprintf("%02d/%02d", t.Day(), int(t.Month()))
}

// Clock formata a leitura do relógio como HH:MM:SS
func (f LabelFormatter) Clock(reading domain.ClockReading) string {
	return reading.String()
}

// Amount formata um valor monetário com os separadores do locale
func (f LabelFormatter) Amount(amount decimal.Decimal) string {
	return f.printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
