package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// log file names inside the log directory
const (
	StandardLogFilename = "standard.log"
	ErrorLogFilename    = "errors.log"
)

// DefaultLogger initializing default logger
// NOTE: with an empty logDir the logger writes to stderr only
func DefaultLogger(debugMode bool, logDir string) (*zap.Logger, error) {
	logDir = strings.TrimSpace(logDir)

	var core zapcore.Core

	//---------------------------------------------------------------------------
	// log enablers and conjunction
	//---------------------------------------------------------------------------
	minLevel := zapcore.InfoLevel
	if debugMode {
		minLevel = zapcore.DebugLevel
	}

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= minLevel && lvl < zapcore.ErrorLevel
	})

	// stdout is reserved for command output, so the console only gets
	// warnings and errors unless in debug mode
	consoleEncoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	consolePriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		if debugMode {
			return lvl >= minLevel
		}

		return lvl >= zapcore.WarnLevel
	})

	//---------------------------------------------------------------------------
	// if logDir is empty, then returning a simple logger for stderr
	//---------------------------------------------------------------------------
	if logDir == "" {
		core = zapcore.NewCore(consoleEncoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), consolePriority)

		return zap.New(core), nil
	}

	// creating log directory if it doesn't exist
	if err := CreateDirectoryIfNotExists(logDir, 0700); err != nil {
		return nil, err
	}

	//---------------------------------------------------------------------------
	// errors logfile
	//---------------------------------------------------------------------------
	errFilepath := filepath.Join(logDir, ErrorLogFilename)
	errFile, err := os.OpenFile(errFilepath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create error log file %s", errFilepath)
	}
	errFileLog := zapcore.Lock(zapcore.AddSync(errFile))

	//---------------------------------------------------------------------------
	// regular logfile
	//---------------------------------------------------------------------------
	stdFilepath := filepath.Join(logDir, StandardLogFilename)
	stdFile, err := os.OpenFile(stdFilepath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		_ = errFile.Close()
		return nil, errors.Wrapf(err, "failed to create standard log file %s", stdFilepath)
	}
	stdFileLog := zapcore.Lock(zapcore.AddSync(stdFile))

	fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	if debugMode {
		core = zapcore.NewTee(
			// files
			zapcore.NewCore(fileEncoder, errFileLog, highPriority),
			zapcore.NewCore(fileEncoder, stdFileLog, lowPriority),

			// console
			zapcore.NewCore(consoleEncoder, zapcore.Lock(zapcore.AddSync(os.Stderr)), consolePriority),
		)
	} else {
		core = zapcore.NewTee(
			// files
			zapcore.NewCore(fileEncoder, errFileLog, highPriority),
			zapcore.NewCore(fileEncoder, stdFileLog, lowPriority),
		)
	}

	return zap.New(core), nil
}
