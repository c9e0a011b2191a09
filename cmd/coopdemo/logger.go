// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// buildLogger returns a zap-backed logger for the given level and a function
// that flushes it.
func buildLogger(level string) (logr.Logger, func(), error) {
	cfg := zap.NewProductionConfig()
	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
		zapLevel = zapcore.DebugLevel
	case "info", "":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return logr.Logger{}, nil, errors.Errorf("unknown log level %q (expected debug, info, warn, or error)", level)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	z, err := cfg.Build()
	if err != nil {
		return logr.Logger{}, nil, errors.Wrap(err, "build logger")
	}
	return zapr.NewLogger(z), func() { _ = z.Sync() }, nil
}
