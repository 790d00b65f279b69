package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/database/postgres"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/pms/pmsclient"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/reporting"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/reviews"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/integrator/reviews/reviewsclient"
	"github.com/stayza-pro/Stayza-Pro-sub005/infrastructure/repository"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/api"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/config"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/scheduler"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/alerting"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/analytics"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/authenticating"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/performance"
	"github.com/stayza-pro/Stayza-Pro-sub005/internal/usecases/property"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	propertyRepo := repository.NewPropertyRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	monthlyReportRepo := repository.NewMonthlyReportRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, propertyRepo, cfg)

	pmsClient := pmsclient.NewClient(cfg)
	pmsIntegrator := pms.New(cfg, pmsClient)

	reviewsClient := reviewsclient.NewClient(cfg)
	reviewsIntegrator := reviews.New(cfg, reviewsClient)

	reportingIntegrator := reporting.New(cfg)

	propertyService := property.NewService(propertyRepo, pmsIntegrator, cfg)

	// Motores de derivação: alertas e metas são puros e não dependem de infra
	alertDeriver := alerting.NewService()
	goalDeriver := performance.NewService()

	// Inicializa o serviço de analytics com suporte a cache
	analyticsService := analytics.NewService(
		cfg,
		pmsIntegrator,
		reviewsIntegrator,
		reportingIntegrator,
		propertyRepo,
		alertDeriver,
		goalDeriver,
	).WithCache(snapshotRepo, monthlyReportRepo)

	// Inicializa os agendadores de sincronização separados
	snapshotSyncService := scheduler.NewSnapshotSyncService(
		propertyRepo,
		snapshotRepo,
		analyticsService,
		cfg,
	)

	monthlyReportSyncService := scheduler.NewMonthlyReportSyncService(
		propertyRepo,
		monthlyReportRepo,
		analyticsService,
		goalDeriver,
		cfg,
	)

	// Inicia os agendadores em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de snapshots")
	} else {
		logrus.Info("Agendador de sincronização de snapshots iniciado com sucesso")
	}

	if err := monthlyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação mensal de relatórios")
	} else {
		logrus.Info("Agendador de consolidação mensal de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		propertyService,
		authenticator,
		snapshotSyncService,      // Serviço de sincronização de snapshots
		monthlyReportSyncService, // Serviço de consolidação mensal
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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
