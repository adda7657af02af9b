package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pharmacy-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharmacy-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/api"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/api/handler"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/config"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/scheduler"
	"github.com/vfg2006/pharmacy-dashboard-api/internal/usecases/dashboard"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	labels, err := dashboard.NewLabelFormatter(cfg.Dashboard.Locale)
	if err != nil {
		logrus.WithError(err).Warnf("Locale inválido, usando %s", dashboard.DefaultLocale)
		labels = dashboard.DefaultLabels()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	companyRepo := repository.NewCompanyRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)

	store := dashboard.NewSnapshotStore()
	dashboardService := dashboard.NewService(store, dashboard.Options{
		DefaultTimezone: cfg.Dashboard.DefaultTimezone,
		TopProducts:     cfg.Dashboard.TopProducts,
		Labels:          labels,
	})

	dataRefreshService := scheduler.NewDataRefreshService(companyRepo, saleRepo, productRepo, store, cfg)
	statusTickerService := scheduler.NewStatusTickerService(dashboardService, store, cfg)

	// Inicia os agendadores em background
	if err := dataRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de dados")
	} else {
		logrus.Info("Agendador de sincronização de dados iniciado com sucesso")
	}

	if err := statusTickerService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o recálculo do estado de funcionamento")
	} else {
		logrus.Info("Recálculo do estado de funcionamento iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, handler.CronJobServices{
		DataRefreshService:  dataRefreshService,
		StatusTickerService: statusTickerService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
