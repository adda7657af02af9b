package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pharmacy_dashboard"

var (
	StatusTicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_ticks_total",
		Help:      "Total de recálculos do estado de funcionamento.",
	})

	ClockFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clock_fallbacks_total",
		Help:      "Amostragens do relógio que usaram o fuso local do sistema.",
	})

	BusinessOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "business_open",
		Help:      "1 quando a farmácia está aberta no último recálculo.",
	})

	DataRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "data_refresh_total",
		Help:      "Sincronizações de dados por resultado.",
	}, []string{"result"})

	DataRefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "data_refresh_duration_seconds",
		Help:      "Duração das sincronizações de dados.",
		Buckets:   prometheus.DefBuckets,
	})

	SalesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "series_sales_dropped_total",
		Help:      "Vendas da janela sem balde correspondente, por período.",
	}, []string{"period"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP por método e status.",
	}, []string{"method", "status"})
)

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// SetOpen atualiza o gauge de funcionamento
func SetOpen(open bool) {
	if open {
		BusinessOpen.Set(1)
		return
	}
	BusinessOpen.Set(0)
}

// ObserveRefresh registra o resultado de uma sincronização
func ObserveRefresh(started time.Time, err error) {
	DataRefreshDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		DataRefreshes.WithLabelValues("error").Inc()
		return
	}
	DataRefreshes.WithLabelValues("success").Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// Middleware conta as requisições HTTP atendidas
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			HTTPRequests.WithLabelValues(r.Method, strconv.Itoa(recorder.status)).Inc()
		})
	}
}
