package logger

import (
	"studio-crm/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the zap logger and tees every entry into the async file
// writer so a JSONL audit trail survives restarts alongside the console output.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {

	// 1. Setup Base Config (Console/JSON)
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Important: Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	// Build the base logger
	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	// 2. Create our Async File Writer
	fileWriter := NewFileLogWriter(cfg)

	// 3. Wrap the Core
	// We replace the logger's core with our "Tee" core (sends to both console and file)
	finalCore := NewFileCore(baseLogger.Core(), fileWriter)

	// 4. Return new Logger with AddCaller enabled
	return zap.New(finalCore, zap.AddCaller()), nil
}
