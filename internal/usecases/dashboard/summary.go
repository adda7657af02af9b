package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

// SummarizeStock calcula alertas e valores do estoque
func SummarizeStock(products []*domain.Product) *domain.StockSummary {
	summary := &domain.StockSummary{
		LowStock:        []domain.StockAlert{},
		OutOfStock:      []domain.StockAlert{},
		CostValue:       decimal.Zero,
		RetailValue:     decimal.Zero,
		PotentialMargin: decimal.Zero,
	}

	for _, product := range products {
		if product == nil {
			continue
		}
		summary.TotalProducts++

		alert := domain.StockAlert{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  product.Quantity,
			MinStock:  product.MinStock,
		}

		switch {
		case product.Quantity <= 0:
			summary.OutOfStock = append(summary.OutOfStock, alert)
			continue
		case product.Quantity <= product.MinStock:
			summary.LowStock = append(summary.LowStock, alert)
		}

		quantity := decimal.NewFromInt(int64(product.Quantity))
		summary.CostValue = summary.CostValue.Add(product.PurchasePrice.Mul(quantity))
		summary.RetailValue = summary.RetailValue.Add(product.SalePrice.Mul(quantity))
	}

	summary.PotentialMargin = summary.RetailValue.Sub(summary.CostValue)

	// Os mais críticos primeiro
	sort.SliceStable(summary.LowStock, func(i, j int) bool {
		return summary.LowStock[i].Quantity < summary.LowStock[j].Quantity
	})

	return summary
}

// SummarizeToday agrega as vendas do dia de now (no fuso de now)
func SummarizeToday(sales []*domain.Sale, now time.Time, topN int) *domain.TodaySummary {
	summary := &domain.TodaySummary{
		Date:            now.Format(time.DateOnly),
		Revenue:         decimal.Zero,
		AverageTicket:   decimal.Zero,
		ByPaymentMethod: []domain.PaymentMethodTotal{},
		TopProducts:     []domain.ProductSales{},
	}

	today := dayKeyOf(now)
	methods := make(map[string]*domain.PaymentMethodTotal)
	products := make(map[string]*domain.ProductSales)

	for _, sale := range sales {
		if sale == nil || dayKeyOf(sale.Timestamp.In(now.Location())) != today {
			continue
		}

		summary.SalesCount++
		summary.Revenue = summary.Revenue.Add(sale.Total)

		method, ok := methods[sale.PaymentMethod]
		if !ok {
			method = &domain.PaymentMethodTotal{Method: sale.PaymentMethod, Amount: decimal.Zero}
			methods[sale.PaymentMethod] = method
		}
		method.Amount = method.Amount.Add(sale.Total)
		method.Count++

		for _, item := range sale.Items {
			key := item.ProductID
			if key == "" {
				key = item.ProductName
			}

			product, ok := products[key]
			if !ok {
				product = &domain.ProductSales{ProductID: item.ProductID, Name: item.ProductName, Amount: decimal.Zero}
				products[key] = product
			}
			product.Quantity += item.Quantity
			product.Amount = product.Amount.Add(item.Subtotal)
		}
	}

	if summary.SalesCount > 0 {
		summary.AverageTicket = summary.Revenue.Div(decimal.NewFromInt(int64(summary.SalesCount))).Round(2)
	}

	for _, method := range methods {
		summary.ByPaymentMethod = append(summary.ByPaymentMethod, *method)
	}
	sort.Slice(summary.ByPaymentMethod, func(i, j int) bool {
		a, b := summary.ByPaymentMethod[i], summary.ByPaymentMethod[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Method < b.Method
	})

	for _, product := range products {
		summary.TopProducts = append(summary.TopProducts, *product)
	}
	sort.Slice(summary.TopProducts, func(i, j int) bool {
		a, b := summary.TopProducts[i], summary.TopProducts[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Name < b.Name
	})
	if topN > 0 && len(summary.TopProducts) > topN {
		summary.TopProducts = summary.TopProducts[:topN]
	}

	return summary
}
