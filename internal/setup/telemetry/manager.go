package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/scamtrace/scamtrace/internal/setup/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Manager handles the creation and management of log files and directories.
// Each run gets a timestamped session directory with separate main and
// database log files alongside console output.
type Manager struct {
	instanceID        string // Unique identifier for this program instance
	componentName     string // Component identifier for this instance
	currentSessionDir string // Path to the current session's log directory
	logDir            string // Base directory for all logs
	level             string // Logging level (debug, info, warn, error)
}

// NewManager creates a new Manager instance for the named component.
func NewManager(componentName, logDir string, debugCfg *config.Debug) *Manager {
	return &Manager{
		instanceID:    uuid.New().String(),
		componentName: componentName,
		logDir:        logDir,
		level:         debugCfg.LogLevel,
	}
}

// GetLoggers initializes the session log directory and returns the main and
// database loggers. The database logger stays out of the console to keep
// query logging from drowning application output.
func (m *Manager) GetLoggers() (*zap.Logger, *zap.Logger, error) {
	sessionDir := filepath.Join(m.logDir, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	m.currentSessionDir = sessionDir

	level, err := zapcore.ParseLevel(m.level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	mainLogger, err := m.buildLogger(filepath.Join(sessionDir, "main.log"), level, true)
	if err != nil {
		return nil, nil, err
	}

	dbLogger, err := m.buildLogger(filepath.Join(sessionDir, "database.log"), level, false)
	if err != nil {
		return nil, nil, err
	}

	mainLogger = mainLogger.With(
		zap.String("component", m.componentName),
		zap.String("instanceId", m.instanceID),
	)

	return mainLogger, dbLogger, nil
}

// SessionDir returns the current session's log directory.
func (m *Manager) SessionDir() string {
	return m.currentSessionDir
}

// buildLogger creates a zap logger writing JSON to the given file, with an
// optional console core for interactive output.
func (m *Manager) buildLogger(path string, level zapcore.Level, console bool) (*zap.Logger, error) {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), level),
	}

	if console {
		consoleConfig := zap.NewDevelopmentEncoderConfig()
		consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleConfig),
			zapcore.AddSync(os.Stdout),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
