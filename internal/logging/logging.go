// Package logging builds the process-wide zap logger. It is constructed once
// at program start and handed to every component; components never reach for
// a global.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Console output goes to stderr at Info
// level (Debug when verbose). When logFile is non-empty, a JSON core at Debug
// level writes there as well.
func New(verbose bool, logFile string) (*zap.Logger, error) {
	consoleLevel := zapcore.InfoLevel
	if verbose {
		consoleLevel = zapcore.DebugLevel
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleEnc := zapcore.NewConsoleEncoder(consoleCfg)

	stderr, _, err := zap.Open("stderr")
	if err != nil {
		return nil, fmt.Errorf("logging: open stderr: %w", err)
	}
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEnc, stderr, consoleLevel),
	}

	if logFile != "" {
		sink, _, err := zap.Open(logFile)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file %s: %w", logFile, err)
		}
		fileCfg := zap.NewProductionEncoderConfig()
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), sink, zapcore.DebugLevel))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
