package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"studio-crm/internal/common/models"
	"studio-crm/internal/config"
	"studio-crm/internal/store"

	"go.uber.org/zap"
)

const maxLogs = 100

// SyncService mirrors the local aggregate to the remote per-user document.
// Writes are best-effort: failures are logged and never retried, and they
// never surface to whoever triggered the mutation. Incoming remote snapshots
// replace local state wholesale (last writer wins).
type SyncService interface {
	Start(ctx context.Context) error
	Stop() error
	Run(ctx context.Context) error
	Status(ctx context.Context) SyncStatus
	ListLogs(ctx context.Context, limit int) []SyncLog
}

type SyncServiceImpl struct {
	Repo   MirrorRepository
	Store  *store.Store
	Config *config.Config
	Logger *zap.Logger

	userID string
	cancel context.CancelFunc
	done   chan struct{}

	mu         sync.Mutex
	logs       []SyncLog
	lastSyncAt *time.Time
	lastRemote []byte // marshaled form of the last snapshot seen from/sent to the mirror
}

func NewSyncService(repo MirrorRepository, s *store.Store, cfg *config.Config, logger *zap.Logger) SyncService {
	return &SyncServiceImpl{
		Repo:   repo,
		Store:  s,
		Config: cfg,
		Logger: logger,
		userID: cfg.AdminEmail,
	}
}

func (s *SyncServiceImpl) enabled() bool {
	return s.Repo != nil
}

// Start hydrates from the remote document once, then runs the write-behind
// worker and the change-stream watcher until Stop.
func (s *SyncServiceImpl) Start(ctx context.Context) error {
	if !s.enabled() {
		s.Logger.Info("remote mirror disabled")
		return nil
	}

	if remote, err := s.Repo.Read(ctx, s.userID); err != nil {
		s.Logger.Warn("failed to read remote mirror on startup", zap.Error(err))
	} else if remote != nil {
		s.Store.Replace(*remote)
		s.rememberRemote(s.Store.Snapshot())
		s.Logger.Info("hydrated local state from remote mirror", zap.String("user_id", s.userID))
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.runWorker(runCtx)
	return nil
}

func (s *SyncServiceImpl) Stop() error {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
	return nil
}

func (s *SyncServiceImpl) runWorker(ctx context.Context) {
	defer close(s.done)

	snapshots, unsubscribe := s.Store.Subscribe()
	defer unsubscribe()
	ticker := time.NewTicker(s.Config.SyncInterval)
	defer ticker.Stop()

	remote := s.watch(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot := <-snapshots:
			s.push(ctx, snapshot, "mutation")
		case <-ticker.C:
			s.push(ctx, s.Store.Snapshot(), "interval")
		case data, ok := <-remote:
			if !ok {
				// stream ended; resubscribe after a pause
				select {
				case <-ctx.Done():
					return
				case <-time.After(5 * time.Second):
				}
				remote = s.watch(ctx)
				continue
			}
			s.Store.Replace(data)
			s.rememberRemote(s.Store.Snapshot())
			s.Logger.Info("applied remote snapshot", zap.String("user_id", s.userID))
		}
	}
}

func (s *SyncServiceImpl) watch(ctx context.Context) <-chan models.CRMData {
	if ctx.Err() != nil {
		return nil
	}
	ch, err := s.Repo.Watch(ctx, s.userID)
	if err != nil {
		s.Logger.Warn("remote watch unavailable", zap.Error(err))
		closed := make(chan models.CRMData)
		close(closed)
		return closed
	}
	return ch
}

// push upserts a snapshot unless it matches the last state exchanged with the
// mirror, which breaks the echo loop between the watcher and the writer.
func (s *SyncServiceImpl) push(ctx context.Context, data models.CRMData, trigger string) {
	raw, err := json.Marshal(data)
	if err != nil {
		s.Logger.Warn("failed to encode snapshot for mirror", zap.Error(err))
		return
	}

	s.mu.Lock()
	unchanged := bytes.Equal(raw, s.lastRemote)
	s.mu.Unlock()
	if unchanged {
		return
	}

	entry := SyncLog{StartTime: time.Now(), Trigger: trigger}
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = s.Repo.Upsert(writeCtx, s.userID, data)
	cancel()

	entry.EndTime = time.Now()
	if err != nil {
		entry.Status = "failed"
		entry.Error = err.Error()
		// best effort only: warn and move on, no retry
		s.Logger.Warn("remote mirror write failed", zap.Error(err), zap.String("trigger", trigger))
	} else {
		entry.Status = "success"
		s.mu.Lock()
		s.lastRemote = raw
		now := entry.EndTime
		s.lastSyncAt = &now
		s.mu.Unlock()
	}
	s.appendLog(entry)
}

func (s *SyncServiceImpl) rememberRemote(data models.CRMData) {
	if raw, err := json.Marshal(data); err == nil {
		s.mu.Lock()
		s.lastRemote = raw
		s.mu.Unlock()
	}
}

func (s *SyncServiceImpl) appendLog(entry SyncLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append([]SyncLog{entry}, s.logs...)
	if len(s.logs) > maxLogs {
		s.logs = s.logs[:maxLogs]
	}
}

// Run forces an immediate flush of the current snapshot.
func (s *SyncServiceImpl) Run(ctx context.Context) error {
	if !s.enabled() {
		return nil
	}
	s.push(ctx, s.Store.Snapshot(), "manual")
	return nil
}

func (s *SyncServiceImpl) Status(ctx context.Context) SyncStatus {
	status := SyncStatus{Enabled: s.enabled()}
	if !status.Enabled {
		return status
	}
	status.UserID = s.userID
	s.mu.Lock()
	status.LastSyncAt = s.lastSyncAt
	s.mu.Unlock()
	return status
}

func (s *SyncServiceImpl) ListLogs(ctx context.Context, limit int) []SyncLog {
	if limit <= 0 {
		limit = 20
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > len(s.logs) {
		limit = len(s.logs)
	}
	return append([]SyncLog(nil), s.logs[:limit]...)
}
