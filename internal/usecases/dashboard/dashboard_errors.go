package dashboard

import (
	"errors"
	"fmt"

	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/apiErrors"
)

// Erros específicos para o contexto do dashboard
var (
	// Erros de validação
	ErrInvalidPeriod      = domain.ErrInvalidPeriod
	ErrInvalidQuickAction = errors.New("invalid quick action")

	// Erros de disponibilidade de dados
	ErrSnapshotNotReady = errors.New("dashboard data not loaded yet")

	// Erros de encaminhamento
	ErrNavigationForward = errors.New("error forwarding navigation request")
)

// DashboardError é um erro com contexto adicional para o dashboard
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func notReadyError() *DashboardError {
	return NewDashboardError(ErrSnapshotNotReady, apiErrors.ErrDataNotReady, "aguardando a primeira sincronização de dados")
}
