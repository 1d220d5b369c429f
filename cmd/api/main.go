package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/inflowwclient"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/repository"
	"github.com/vfg2006/chatter-metrics-api/internal/api"
	"github.com/vfg2006/chatter-metrics-api/internal/config"
	"github.com/vfg2006/chatter-metrics-api/internal/roster"
	"github.com/vfg2006/chatter-metrics-api/internal/scheduler"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/history"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/ranking"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

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

	chatterRepo := repository.NewChatterRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	rankingRepo := repository.NewAccountRankingRepository(pgConn)

	rst := loadRoster(chatterRepo, accountRepo)

	inflowwClient := inflowwclient.NewClient(cfg)
	inflowwIntegrator := infloww.New(cfg, inflowwClient)

	reportingService := reporting.NewService(cfg, inflowwIntegrator, rst)
	historyService := history.NewService(cfg, inflowwIntegrator, rst)
	rankingService := ranking.NewAccountRankingService(rankingRepo)

	authenticator := authenticating.NewService(cfg)

	rankingSnapshotService := scheduler.NewRankingSnapshotService(
		reportingService,
		rankingRepo,
		cfg,
	)

	if err := rankingSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de contas")
	} else {
		logrus.Info("Agendador do ranking de contas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		historyService,
		rankingService,
		authenticator,
		rst,
		rankingSnapshotService,
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// loadRoster carrega o cadastro de chatters e contas na inicialização.
// O cadastro muda por deploy, não em runtime, então uma carga única basta.
func loadRoster(chatterRepo repository.ChatterRepository, accountRepo repository.AccountRepository) *roster.Roster {
	chatters, err := chatterRepo.ListChatters(nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o cadastro de chatters")
	}

	accounts, err := accountRepo.ListAccounts(nil)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o cadastro de contas")
	}

	logrus.WithFields(logrus.Fields{
		"chatters": len(chatters),
		"accounts": len(accounts),
	}).Info("Cadastro carregado com sucesso")

	return roster.New(chatters, accounts)
}
