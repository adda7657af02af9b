// Package dashboard contém o motor de derivação do dashboard da farmácia:
// amostragem do relógio, estado de funcionamento e séries de vendas.
package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/metrics"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/utils"
)

type Dashboarder interface {
	// Status calcula o estado de funcionamento no instante informado
	Status(now time.Time) *domain.BusinessStatus

	// SalesSeries monta a série de vendas da janela selecionada
	SalesSeries(period domain.Period, now time.Time) ([]domain.SalesPoint, error)

	// Overview reúne status, série, estoque, caixa do dia e frase do dia
	Overview(period domain.Period, now time.Time) (*domain.DashboardOverview, error)

	Stock() (*domain.StockSummary, error)
	Today(now time.Time) (*domain.TodaySummary, error)
	Quote(now time.Time) domain.Quote

	// QuickAction encaminha um pedido de navegação emitido pela interface
	QuickAction(ctx context.Context, view, action string) (*domain.NavigationRequest, error)

	Labels() LabelFormatter

	// Ready indica se a primeira sincronização de dados já foi publicada
	Ready() bool
}

// NavigationForwarder recebe os pedidos de navegação das ações rápidas
type NavigationForwarder interface {
	Forward(ctx context.Context, request *domain.NavigationRequest) error
}

// LogForwarder apenas registra o pedido de navegação no log
type LogForwarder struct{}

func (LogForwarder) Forward(_ context.Context, request *domain.NavigationRequest) error {
	logrus.WithFields(logrus.Fields{
		"navigation_id": request.ID,
		"view":          request.View,
		"action":        request.Action,
	}).Info("Pedido de navegação encaminhado")
	return nil
}

// Options configura o serviço do dashboard
type Options struct {
	DefaultTimezone string
	TopProducts     int
	Labels          LabelFormatter
	Forwarder       NavigationForwarder
}

type Service struct {
	store           *SnapshotStore
	series          SeriesBuilder
	labels          LabelFormatter
	defaultTimezone string
	topProducts     int
	forwarder       NavigationForwarder
}

func NewService(store *SnapshotStore, opts Options) Dashboarder {
	if opts.DefaultTimezone == "" {
		opts.DefaultTimezone = domain.DefaultTimezone
	}
	if opts.Labels.printer == nil {
		opts.Labels = defaultLabels
	}
	if opts.Forwarder == nil {
		opts.Forwarder = LogForwarder{}
	}

	return &Service{
		store:           store,
		series:          NewSeriesBuilder(opts.Labels),
		labels:          opts.Labels,
		defaultTimezone: opts.DefaultTimezone,
		topProducts:     opts.TopProducts,
		forwarder:       opts.Forwarder,
	}
}

func (s *Service) Labels() LabelFormatter {
	return s.labels
}

func (s *Service) Ready() bool {
	return s.store.Current() != nil
}

func (s *Service) Status(now time.Time) *domain.BusinessStatus {
	profile := s.profile()
	status := EvaluateStatus(profile, Sample(now, profile.Timezone), now)
	return &status
}

func (s *Service) SalesSeries(period domain.Period, now time.Time) ([]domain.SalesPoint, error) {
	snapshot := s.store.Current()
	if snapshot == nil {
		return nil, notReadyError()
	}

	return s.buildSeries(snapshot, period, now)
}

func (s *Service) Overview(period domain.Period, now time.Time) (*domain.DashboardOverview, error) {
	snapshot := s.store.Current()
	if snapshot == nil {
		return nil, notReadyError()
	}

	series, err := s.buildSeries(snapshot, period, now)
	if err != nil {
		return nil, err
	}

	localNow := s.localNow(snapshot.Profile, now)
	status := EvaluateStatus(snapshot.Profile, Sample(now, snapshot.Profile.Timezone), now)

	return &domain.DashboardOverview{
		Status:      &status,
		Period:      period,
		Series:      series,
		Stock:       SummarizeStock(snapshot.Products),
		Today:       SummarizeToday(snapshot.Sales, localNow, s.topProducts),
		Quote:       QuoteOfTheDay(localNow),
		DataVersion: snapshot.Version,
		LoadedAt:    snapshot.LoadedAt,
	}, nil
}

func (s *Service) Stock() (*domain.StockSummary, error) {
	snapshot := s.store.Current()
	if snapshot == nil {
		return nil, notReadyError()
	}
	return SummarizeStock(snapshot.Products), nil
}

func (s *Service) Today(now time.Time) (*domain.TodaySummary, error) {
	snapshot := s.store.Current()
	if snapshot == nil {
		return nil, notReadyError()
	}
	return SummarizeToday(snapshot.Sales, s.localNow(snapshot.Profile, now), s.topProducts), nil
}

func (s *Service) Quote(now time.Time) domain.Quote {
	return QuoteOfTheDay(s.localNow(s.profile(), now))
}

func (s *Service) QuickAction(ctx context.Context, view, action string) (*domain.NavigationRequest, error) {
	view = strings.TrimSpace(view)
	action = strings.TrimSpace(action)
	if view == "" {
		return nil, NewDashboardError(ErrInvalidQuickAction, apiErrors.ErrMissingRequiredData, "a view de destino é obrigatória")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewDashboardError(err, apiErrors.ErrInternalServer, "erro ao gerar o ID do pedido de navegação")
	}

	request := &domain.NavigationRequest{
		ID:          id,
		View:        view,
		Action:      action,
		RequestedAt: time.Now(),
	}

	if err := s.forwarder.Forward(ctx, request); err != nil {
		return nil, NewDashboardError(ErrNavigationForward, apiErrors.ErrExternalService, err.Error())
	}

	return request, nil
}

func (s *Service) buildSeries(snapshot *Snapshot, period domain.Period, now time.Time) ([]domain.SalesPoint, error) {
	if period.Days() == 0 && !period.IsDaily() {
		return nil, NewDashboardError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, string(period))
	}

	result := s.series.Build(period, snapshot.Sales, snapshot.Profile.Opening, s.localNow(snapshot.Profile, now))
	if result.Dropped > 0 {
		metrics.SalesDropped.WithLabelValues(string(period)).Add(float64(result.Dropped))
		logrus.WithFields(logrus.Fields{
			"period":  period,
			"dropped": result.Dropped,
			"version": snapshot.Version,
		}).Debug("Vendas sem balde correspondente ignoradas na série")
	}

	return result.Points, nil
}

// profile retorna o perfil do snapshot atual, ou um perfil vazio antes da primeira carga
func (s *Service) profile() *domain.BusinessProfile {
	if snapshot := s.store.Current(); snapshot != nil && snapshot.Profile != nil {
		return snapshot.Profile
	}
	return NormalizeCompany(nil, s.defaultTimezone)
}

func (s *Service) localNow(profile *domain.BusinessProfile, now time.Time) time.Time {
	loc, err := loadNamedLocation(profile.Timezone)
	if err != nil {
		return now.Local()
	}
	return now.In(loc)
}
