package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento mais comuns nas farmácias
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodMPesa    = "mpesa"
	PaymentMethodEMola    = "emola"
	PaymentMethodTransfer = "transfer"
)

type SaleItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Sale é uma venda registrada no histórico externo, somente leitura para o dashboard
type Sale struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method"`
	Items         []SaleItem      `json:"items"`
	CustomerName  *string         `json:"customer_name"`
	PerformedBy   string          `json:"performed_by"`
}

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	MinStock      int             `json:"min_stock"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}
