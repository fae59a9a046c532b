package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studio-crm/internal/config"

	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level   zapcore.Level
	Message string
	Caller  string // Function name
}

type logRecord struct {
	App       string    `json:"app"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Caller    string    `json:"caller,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FileLogWriter handles the async writing
type FileLogWriter struct {
	path    string
	logChan chan LogEntry
	appId   string
}

// NewFileLogWriter initializes the worker
func NewFileLogWriter(cfg *config.Config) *FileLogWriter {
	writer := &FileLogWriter{
		path:    cfg.LogPath,
		logChan: make(chan LogEntry, 1000), // Buffer 1000 logs
		appId:   cfg.AppId,
	}

	// Start the background worker immediately
	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook
func (w *FileLogWriter) AddLog(entry LogEntry) {
	select {
	case w.logChan <- entry:
		// Log pushed to channel
	default:
		// Channel full: drop log to prevent blocking the API
		fmt.Println("Log channel full! Dropping log:", entry.Message)
	}
}

func (w *FileLogWriter) processLogs() {
	_ = os.MkdirAll(filepath.Dir(w.path), 0o755)
	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Println("Cannot open log file, file logging disabled:", err)
		for range w.logChan {
		}
		return
	}

	enc := json.NewEncoder(file)
	for entry := range w.logChan {
		// Append one JSON record per line (safely ignore errors to keep app running)
		_ = enc.Encode(logRecord{
			App:       w.appId,
			Level:     entry.Level.String(),
			Message:   entry.Message,
			Caller:    entry.Caller,
			CreatedAt: time.Now().UTC(),
		})
	}
}
