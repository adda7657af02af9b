package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pharmacy-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

const (
	salesTable     = "sales s"
	saleItemsTable = "sale_items si"
)

type SaleRepository interface {
	ListSince(ctx context.Context, since time.Time) ([]*domain.Sale, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListSince retorna as vendas a partir de since, em ordem cronológica, com os itens
func (r *saleRepository) ListSince(ctx context.Context, since time.Time) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("s.id, s.sold_at, s.total, s.payment_method, s.customer_name, s.performed_by").
		From(salesTable).
		Where(squirrel.GtOrEq{"s.sold_at": since}).
		OrderBy("s.sold_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := []*domain.Sale{}
	salesByID := make(map[string]*domain.Sale)
	for rows.Next() {
		var (
			sale     domain.Sale
			customer sql.NullString
		)
		if err := rows.Scan(&sale.ID, &sale.Timestamp, &sale.Total, &sale.PaymentMethod, &customer, &sale.PerformedBy); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sale.CustomerName = nullableString(customer)
		sale.Items = []domain.SaleItem{}

		sales = append(sales, &sale)
		salesByID[sale.ID] = &sale
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas: %w", err)
	}

	if len(sales) == 0 {
		return sales, nil
	}

	if err := r.loadItems(ctx, salesByID); err != nil {
		return nil, err
	}

	return sales, nil
}

func (r *saleRepository) loadItems(ctx context.Context, salesByID map[string]*domain.Sale) error {
	ids := make([]string, 0, len(salesByID))
	for id := range salesByID {
		ids = append(ids, id)
	}

	query, args, err := squirrel.
		Select("si.sale_id, si.product_id, si.product_name, si.quantity, si.unit_price, si.subtotal").
		From(saleItemsTable).
		Where(squirrel.Expr("si.sale_id = ANY(?)", pq.Array(ids))).
		OrderBy("si.sale_id ASC", "si.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de itens: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query de itens: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			saleID    string
			productID sql.NullString
			item      domain.SaleItem
		)
		if err := rows.Scan(&saleID, &productID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return fmt.Errorf("erro ao escanear item de venda: %w", err)
		}
		item.ProductID = productID.String

		if sale, ok := salesByID[saleID]; ok {
			sale.Items = append(sale.Items, item)
		}
	}

	return rows.Err()
}
