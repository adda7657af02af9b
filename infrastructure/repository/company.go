package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/pharmacy-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
)

const (
	companiesTable     = "companies c"
	companyShiftsTable = "company_shifts cs"
)

// ErrCompanyNotFound indica que o ID configurado não existe na base
var ErrCompanyNotFound = errors.New("empresa não encontrada")

type CompanyRepository interface {
	GetCompanyInfo(ctx context.Context, companyID string) (*domain.CompanyInfo, error)
}

type companyRepository struct {
	conn postgres.Queryer
}

func NewCompanyRepository(conn postgres.Queryer) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

// GetCompanyInfo busca a empresa e seus turnos, ordenados pela posição configurada.
// Sem companyID, usa a primeira empresa cadastrada.
func (r *companyRepository) GetCompanyInfo(ctx context.Context, companyID string) (*domain.CompanyInfo, error) {
	builder := squirrel.
		Select("c.id, c.name, c.timezone, c.opening_time, c.closing_time").
		From(companiesTable).
		PlaceholderFormat(squirrel.Dollar)

	if companyID != "" {
		builder = builder.Where(squirrel.Eq{"c.id": companyID})
	} else {
		builder = builder.OrderBy("c.created_at ASC").Limit(1)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		info     domain.CompanyInfo
		timezone sql.NullString
		opening  sql.NullString
		closing  sql.NullString
	)

	err = r.conn.QueryRow(ctx, query, args...).Scan(&info.ID, &info.Name, &timezone, &opening, &closing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("erro ao escanear empresa: %w", err)
	}

	info.Timezone = timezone.String
	info.OpeningTime = nullableString(opening)
	info.ClosingTime = nullableString(closing)

	shifts, err := r.listShifts(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	info.Shifts = shifts

	return &info, nil
}

func (r *companyRepository) listShifts(ctx context.Context, companyID string) ([]domain.Shift, error) {
	query, args, err := squirrel.
		Select("cs.id, cs.name, cs.label, cs.start_time, cs.end_time, cs.position").
		From(companyShiftsTable).
		Where(squirrel.Eq{"cs.company_id": companyID}).
		OrderBy("cs.position ASC").
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

	shifts := []domain.Shift{}
	for rows.Next() {
		var (
			shift domain.Shift
			label sql.NullString
		)
		if err := rows.Scan(&shift.ID, &shift.Name, &label, &shift.StartTime, &shift.EndTime, &shift.Position); err != nil {
			return nil, fmt.Errorf("erro ao escanear turno: %w", err)
		}
		shift.Label = label.String
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar turnos: %w", err)
	}

	return shifts, nil
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}
