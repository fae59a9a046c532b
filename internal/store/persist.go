package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"studio-crm/internal/common/models"

	"go.uber.org/zap"
)

// FilePersister writes the aggregate to a single JSON snapshot file. Writes
// are fire-and-forget: mutations push onto a buffered channel and a worker
// goroutine does the IO, so the caller never waits on the disk.
type FilePersister struct {
	path     string
	logger   *zap.Logger
	saveChan chan models.CRMData
}

func NewFilePersister(path string, logger *zap.Logger) *FilePersister {
	p := &FilePersister{
		path:     path,
		logger:   logger,
		saveChan: make(chan models.CRMData, 64),
	}
	go p.processSaves()
	return p
}

// Save queues a snapshot. If the channel is full the snapshot is dropped; a
// newer one is already behind it.
func (p *FilePersister) Save(data models.CRMData) {
	select {
	case p.saveChan <- data:
	default:
		p.logger.Warn("snapshot queue full, dropping write", zap.String("path", p.path))
	}
}

func (p *FilePersister) processSaves() {
	for data := range p.saveChan {
		if err := p.write(data); err != nil {
			p.logger.Warn("failed to persist snapshot", zap.String("path", p.path), zap.Error(err))
		}
	}
}

func (p *FilePersister) write(data models.CRMData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p.path)
}

// Load hydrates the aggregate from the snapshot file. A missing or malformed
// file is not an error: the caller gets the built-in sample dataset so the app
// always starts with usable state.
func Load(path string, logger *zap.Logger) models.CRMData {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read snapshot, using sample data", zap.String("path", path), zap.Error(err))
		}
		return SampleData()
	}

	var data models.CRMData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Warn("malformed snapshot, using sample data", zap.String("path", path), zap.Error(err))
		return SampleData()
	}
	return data
}
