// Package scheduler contém os serviços de agendamento de tarefas recorrentes
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chatter-metrics-api/infrastructure/repository"
	"github.com/vfg2006/chatter-metrics-api/internal/config"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/chatter-metrics-api/pkg/utils"
)

type RankingSnapshotConfig struct {
	CronSchedule string
	Enabled      bool
}

// RankingSnapshotService materializa diariamente o ranking mensal de contas.
// O relatório por conta é caro (uma varredura do provedor por conta), então
// o endpoint de ranking lê o snapshot persistido em vez de recalcular.
type RankingSnapshotService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	rankingRepo         repository.AccountRankingRepository
	config              RankingSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	now                 func() time.Time
}

func NewRankingSnapshotService(
	reporter reporting.Reporter,
	rankingRepo repository.AccountRankingRepository,
	cfg *config.Config,
) *RankingSnapshotService {
	snapshotConfig := RankingSnapshotConfig{
		CronSchedule: cfg.RankingSnapshot.CronSchedule, // Default: 6h da manhã todos os dias
		Enabled:      cfg.RankingSnapshot.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
	}).Info("Configuração do agendador do ranking de contas carregada")

	return &RankingSnapshotService{
		scheduler:   scheduler,
		reporter:    reporter,
		rankingRepo: rankingRepo,
		config:      snapshotConfig,
		now:         time.Now,
	}
}

func (s *RankingSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização do ranking de contas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do ranking de contas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateAccountRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de contas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do ranking de contas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de contas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RankingSnapshotService) UpdateAccountRanking() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Atualização do ranking de contas já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
	}()

	logrus.Info("Iniciando atualização do ranking de contas")

	if err := s.snapshotWithDate(s.now()); err != nil {
		logrus.WithError(err).Error("Erro ao gerar snapshot do ranking de contas")
		return err
	}

	logrus.Info("Atualização do ranking de contas concluída")

	return nil
}

// snapshotWithDate recalcula o ranking do mês de ontem: do primeiro dia do
// mês até ontem. Rodando de madrugada, o dia corrente ainda não fechou e
// ficaria subcontado.
func (s *RankingSnapshotService) snapshotWithDate(processingDate time.Time) error {
	yesterday := processingDate.AddDate(0, 0, -1)
	firstDayOfMonth := getFirstDayOfMonth(yesterday)
	month := yesterday.Format("01-2006")

	report, err := s.reporter.GetAccountMetrics(&domain.ReportFilters{
		StartDate: &firstDayOfMonth,
		EndDate:   &yesterday,
	})
	if err != nil {
		return err
	}

	if report.Partial {
		logrus.WithField("month", month).
			Warn("RankingSnapshotService: relatório parcial, snapshot pode subcontar contas degradadas")
	}

	previous, err := s.rankingRepo.ListByMonth(month)
	if err != nil {
		return err
	}

	previousByAccount := make(map[string]*domain.AccountRankingItem, len(previous))
	for _, item := range previous {
		previousByAccount[item.AccountID] = item
	}

	// GetAccountMetrics já devolve as contas ordenadas por receita líquida
	rankings := make([]*domain.AccountRankingItem, 0, len(report.Accounts))
	for i, account := range report.Accounts {
		item := &domain.AccountRankingItem{
			AccountID:        account.AccountID,
			AccountName:      account.AccountName,
			Month:            month,
			NetRevenue:       account.TotalNet,
			ImpactPercentage: account.ImpactPercentage,
			Position:         i + 1,
		}

		if before, exists := previousByAccount[account.AccountID]; exists {
			item.ID = before.ID
			item.PreviousPosition = before.Position
			item.PositionChange = before.Position - item.Position
		} else {
			id, err := utils.GenerateID()
			if err != nil {
				return err
			}
			item.ID = id
		}

		rankings = append(rankings, item)
	}

	return s.rankingRepo.SaveOrUpdate(rankings)
}

// TriggerManualSync inicia manualmente uma atualização do ranking de contas
func (s *RankingSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking de contas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de contas")
	go s.UpdateAccountRanking()
}

// GetStatus retorna o status atual do agendador
func (s *RankingSnapshotService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func getFirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
