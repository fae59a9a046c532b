package logger

import (
	"go.uber.org/zap/zapcore"
)

// FileCore is a custom Zap Core that intercepts logs
type FileCore struct {
	zapcore.Core
	writer *FileLogWriter
}

// NewFileCore wraps an existing core (like console logger) and adds file logging
func NewFileCore(baseCore zapcore.Core, writer *FileLogWriter) zapcore.Core {
	return &FileCore{
		Core:   baseCore,
		writer: writer,
	}
}

// Write is called for every log entry
func (c *FileCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	// entry.Caller.Function is populated because the logger is built with AddCaller()
	c.writer.AddLog(LogEntry{
		Level:   entry.Level,
		Message: entry.Message,
		Caller:  entry.Caller.Function,
	})

	// Call the underlying core (so it still prints to Console/File)
	return c.Core.Write(entry, fields)
}

// Check decides if we should log this level
func (c *FileCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}
