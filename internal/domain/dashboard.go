package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Origem da decisão de aberto/fechado
const (
	StatusSourceBusinessHours = "business_hours"
	StatusSourceShifts        = "shifts"
	StatusSourceNone          = "none"
)

// ClockReading é uma amostra do relógio convertida para o fuso da empresa
type ClockReading struct {
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Second   int    `json:"second"`
	Timezone string `json:"timezone"`
	Fallback bool   `json:"fallback"` // true quando o fuso falhou e a hora local do sistema foi usada
}

// TimeOfDay converte a leitura em hora fracionária (segundos são ignorados)
func (c ClockReading) TimeOfDay() TimeOfDay {
	return NewTimeOfDay(c.Hour, c.Minute)
}

func (c ClockReading) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// BusinessStatus é o estado exibido no selo de aberto/fechado
type BusinessStatus struct {
	Open          bool      `json:"open"`
	Source        string    `json:"source"`
	ShiftName     string    `json:"shift_name,omitempty"`
	ShiftLabel    string    `json:"shift_label,omitempty"`
	Clock         string    `json:"clock"`
	Timezone      string    `json:"timezone"`
	TimeOfDay     TimeOfDay `json:"time_of_day"`
	ClockFallback bool      `json:"clock_fallback"`
	SampledAt     time.Time `json:"sampled_at"`
}

// SalesPoint é um ponto da série de vendas. A ordem da série é cronológica.
type SalesPoint struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type StockAlert struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	MinStock  int    `json:"min_stock"`
}

// StockSummary agrega a situação do estoque
type StockSummary struct {
	TotalProducts   int             `json:"total_products"`
	LowStock        []StockAlert    `json:"low_stock"`
	OutOfStock      []StockAlert    `json:"out_of_stock"`
	CostValue       decimal.Decimal `json:"cost_value"`
	RetailValue     decimal.Decimal `json:"retail_value"`
	PotentialMargin decimal.Decimal `json:"potential_margin"`
}

type PaymentMethodTotal struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type ProductSales struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// TodaySummary agrega o caixa do dia corrente
type TodaySummary struct {
	Date            string               `json:"date"`
	Revenue         decimal.Decimal      `json:"revenue"`
	SalesCount      int                  `json:"sales_count"`
	AverageTicket   decimal.Decimal      `json:"average_ticket"`
	ByPaymentMethod []PaymentMethodTotal `json:"by_payment_method"`
	TopProducts     []ProductSales       `json:"top_products"`
}

// Quote é a frase do dia exibida no dashboard
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// NavigationRequest é o sinal de navegação emitido por uma ação rápida
type NavigationRequest struct {
	ID          string    `json:"id"`
	View        string    `json:"view"`
	Action      string    `json:"action"`
	RequestedAt time.Time `json:"requested_at"`
}

// DashboardOverview reúne tudo o que a tela principal precisa
type DashboardOverview struct {
	Status      *BusinessStatus `json:"status"`
	Period      Period          `json:"period"`
	Series      []SalesPoint    `json:"series"`
	Stock       *StockSummary   `json:"stock"`
	Today       *TodaySummary   `json:"today"`
	Quote       Quote           `json:"quote"`
	DataVersion int64           `json:"data_version"`
	LoadedAt    time.Time       `json:"loaded_at"`
}
