// Package scheduler contém os serviços de agendamento do dashboard
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/config"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/metrics"
)

type DataRefreshConfig struct {
	CompanyID       string
	DefaultTimezone string
	HistoryDays     int
	IntervalSeconds int
	Enabled         bool
}

// DataRefreshService recarrega empresa, vendas e produtos e publica um novo snapshot
type DataRefreshService struct {
	scheduler           *gocron.Scheduler
	companyRepo         repository.CompanyRepository
	saleRepo            repository.SaleRepository
	productRepo         repository.ProductRepository
	store               *dashboard.SnapshotStore
	config              DataRefreshConfig
	baseCtx             context.Context
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastVersion         int64
}

func NewDataRefreshService(
	companyRepo repository.CompanyRepository,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	store *dashboard.SnapshotStore,
	cfg *config.Config,
) *DataRefreshService {
	refreshConfig := DataRefreshConfig{
		CompanyID:       cfg.Dashboard.CompanyID,
		DefaultTimezone: cfg.Dashboard.DefaultTimezone,
		HistoryDays:     cfg.Dashboard.HistoryDays,     // Default: 91 dias
		IntervalSeconds: cfg.DataRefresh.IntervalSeconds, // Default: 30 segundos
		Enabled:         cfg.DataRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"interval_seconds": refreshConfig.IntervalSeconds,
		"history_days":     refreshConfig.HistoryDays,
	}).Info("Configuração do agendador de sincronização de dados carregada")

	return &DataRefreshService{
		scheduler:   gocron.NewScheduler(time.Local),
		companyRepo: companyRepo,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		store:       store,
		config:      refreshConfig,
		baseCtx:     context.Background(),
		now:         time.Now,
	}
}

func (s *DataRefreshService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.Enabled {
		logrus.Info("Sincronização periódica de dados desabilitada por configuração, carregando uma única vez")
		go s.run()
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).Info("Iniciando agendador de sincronização de dados")

	// A primeira execução acontece imediatamente
	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().SingletonMode().Do(s.run)
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de dados")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DataRefreshService) run() {
	if err := s.Refresh(s.baseCtx); err != nil {
		logrus.WithError(err).Error("Erro na sincronização de dados do dashboard")
	}
}

// Refresh carrega os dados e publica um novo snapshot. Em caso de erro o snapshot
// anterior continua publicado.
func (s *DataRefreshService) Refresh(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Sincronização de dados já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	started := time.Now()
	snapshot, err := s.load(ctx)
	metrics.ObserveRefresh(started, err)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	if err != nil {
		s.lastSyncError = err.Error()
		return err
	}

	s.lastSyncError = ""
	s.lastVersion = snapshot.Version

	logrus.WithFields(logrus.Fields{
		"sync_version":  snapshot.Version,
		"sync_sales":    len(snapshot.Sales),
		"sync_products": len(snapshot.Products),
		"duration_ms":   time.Since(started).Milliseconds(),
	}).Debug("Snapshot do dashboard publicado")

	return nil
}

func (s *DataRefreshService) load(ctx context.Context) (*dashboard.Snapshot, error) {
	if s.config.IntervalSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.config.IntervalSeconds)*time.Second)
		defer cancel()
	}

	info, err := s.companyRepo.GetCompanyInfo(ctx, s.config.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a configuração da empresa: %w", err)
	}

	profile := dashboard.NormalizeCompany(info, s.config.DefaultTimezone)
	for _, issue := range profile.Issues {
		logrus.WithFields(logrus.Fields{
			"company_id": profile.CompanyID,
			"issue":      issue,
		}).Warn("Configuração da empresa ajustada")
	}

	now := s.now()
	sales, err := s.saleRepo.ListSince(ctx, s.historyStart(profile.Timezone, now))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar as vendas: %w", err)
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar os produtos: %w", err)
	}

	return s.store.Publish(profile, sales, products, now), nil
}

// historyStart retorna a meia-noite, no fuso da empresa, do dia mais antigo do histórico
func (s *DataRefreshService) historyStart(timezone string, now time.Time) time.Time {
	loc, err := dashboard.LoadLocation(timezone)
	if err != nil {
		loc = time.Local
	}

	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, -s.config.HistoryDays)
}

// TriggerManualSync inicia manualmente uma sincronização de dados
func (s *DataRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de dados já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de dados")
	go s.run()
}

// GetStatus retorna o status atual do agendador
func (s *DataRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_interval_s":        s.config.IntervalSeconds,
		"sync_history_days":      s.config.HistoryDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"data_version":           s.lastVersion,
	}
}
