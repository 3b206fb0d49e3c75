package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benchtrust/budgetplanung-api/internal/config"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

var ErrSyncInProgress = errors.New("sincronização de providers já em andamento")

// ProviderSyncer é implementado pelo serviço de clientes
type ProviderSyncer interface {
	SyncProviders(ctx context.Context) (*domain.SyncProvidersResponse, error)
}

// ProviderSyncConfig representa a configuração do agendador de sincronização de providers
type ProviderSyncConfig struct {
	CronSchedule string
	Timeout      time.Duration
	SyncEnabled  bool
}

// ProviderSyncService agenda e executa a sincronização do diretório de providers.
// Execuções sobrepostas no mesmo processo são descartadas.
type ProviderSyncService struct {
	scheduler           *gocron.Scheduler
	config              ProviderSyncConfig
	syncer              ProviderSyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.SyncProvidersResponse
	lastError           string
}

func NewProviderSyncService(syncer ProviderSyncer, appConfig *config.Config) *ProviderSyncService {
	syncConfig := ProviderSyncConfig{
		CronSchedule: appConfig.ProviderSync.CronSchedule,
		Timeout:      appConfig.ProviderSync.Timeout,
		SyncEnabled:  appConfig.ProviderSync.Enabled,
	}

	if syncConfig.Timeout <= 0 {
		syncConfig.Timeout = 2 * time.Minute
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"timeout":       syncConfig.Timeout.String(),
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de providers carregada")

	return &ProviderSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		syncer:    syncer,
	}
}

// Start inicia o agendador
func (s *ProviderSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de providers desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de providers")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunNow(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na sincronização agendada de providers")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de providers: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de providers")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a sincronização de forma síncrona, respeitando o timeout configurado
func (s *ProviderSyncService) RunNow(ctx context.Context) (*domain.SyncProvidersResponse, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de providers já em andamento, ignorando")
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	logrus.Info("Iniciando sincronização de providers")

	response, err := s.syncer.SyncProviders(ctx)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastResult = response
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return response, err
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"created":  response.Quantity,
	}).Info("Sincronização de providers concluída")

	return response, nil
}

// TriggerManualSync dispara a sincronização em background
func (s *ProviderSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de providers já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de providers")
	go func() {
		if _, err := s.RunNow(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
			logrus.WithError(err).Error("Erro na sincronização manual de providers")
		}
	}()
}

func (s *ProviderSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *ProviderSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_timeout":           s.config.Timeout.String(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastResult != nil {
		status["last_sync_quantity"] = s.lastResult.Quantity
	}
	if s.lastError != "" {
		status["last_sync_error"] = s.lastError
	}

	return status
}
