// Package logging builds the file-backed zap logger. The wizard owns the
// terminal, so log output always goes to a file under the state directory,
// never to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New opens a date-stamped log file under stateDir/logs and returns a logger
// writing to it. The caller should defer the returned close function.
func New(stateDir, level string) (*zap.Logger, func(), error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	logsDir := filepath.Join(stateDir, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating logs dir: %w", err)
	}

	logPath := filepath.Join(logsDir, time.Now().Format("2006-01-02")+".log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(file),
		lvl,
	)

	logger := zap.New(core)
	closeFn := func() {
		logger.Sync()
		file.Close()
	}
	return logger, closeFn, nil
}
