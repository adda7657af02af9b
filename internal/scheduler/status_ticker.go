package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/config"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/domain"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/pharmacy-dashboard-api/pkg/metrics"
)

type StatusTickerConfig struct {
	IntervalSeconds int
	Enabled         bool
}

// StatusTickerService recalcula o estado de funcionamento a cada intervalo e
// registra as transições
type StatusTickerService struct {
	scheduler  *gocron.Scheduler
	service    dashboard.Dashboarder
	store      *dashboard.SnapshotStore
	config     StatusTickerConfig
	now        func() time.Time
	mu         sync.Mutex
	ticks      int64
	lastTickAt time.Time
}

func NewStatusTickerService(
	service dashboard.Dashboarder,
	store *dashboard.SnapshotStore,
	cfg *config.Config,
) *StatusTickerService {
	return &StatusTickerService{
		scheduler: gocron.NewScheduler(time.Local),
		service:   service,
		store:     store,
		config: StatusTickerConfig{
			IntervalSeconds: cfg.StatusTicker.IntervalSeconds,
			Enabled:         cfg.StatusTicker.Enabled,
		},
		now: time.Now,
	}
}

func (s *StatusTickerService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recálculo periódico do estado de funcionamento desabilitado por configuração")
		return nil
	}

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().SingletonMode().Do(s.Tick)
	if err != nil {
		return fmt.Errorf("erro ao agendar o recálculo do estado de funcionamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando recálculo do estado de funcionamento")
		s.scheduler.Stop()
	}()

	return nil
}

// Tick recalcula o status, publica no store e retorna o valor calculado
func (s *StatusTickerService) Tick() *domain.BusinessStatus {
	now := s.now()
	status := s.service.Status(now)

	metrics.StatusTicks.Inc()
	metrics.SetOpen(status.Open)
	if status.ClockFallback {
		metrics.ClockFallbacks.Inc()
	}

	previous := s.store.SetStatus(*status)

	s.mu.Lock()
	s.ticks++
	s.lastTickAt = now
	s.mu.Unlock()

	if previous == nil || previous.Open != status.Open || previous.ShiftName != status.ShiftName {
		logrus.WithFields(logrus.Fields{
			"open":     status.Open,
			"source":   status.Source,
			"shift":    status.ShiftName,
			"clock":    status.Clock,
			"timezone": status.Timezone,
		}).Info("Estado de funcionamento alterado")
	}

	return status
}

// TriggerManualSync força um recálculo imediato
func (s *StatusTickerService) TriggerManualSync() {
	go s.Tick()
}

// GetStatus retorna o status atual do agendador
func (s *StatusTickerService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]any{
		"tick_enabled":    s.config.Enabled,
		"tick_interval_s": s.config.IntervalSeconds,
		"ticks":           s.ticks,
		"last_tick_at":    s.lastTickAt,
	}

	if last := s.store.LastStatus(); last != nil {
		status["open"] = last.Open
		status["source"] = last.Source
		status["shift"] = last.ShiftName
	}

	return status
}
