// Package logger is a thin facade over slog so call sites stay short.
package logger

import (
	"fmt"
	"log/slog"
	"os"
)

// The package var is usable from init time; Init only reconfigures it.
var log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	log = slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Infof(format string, v ...any) {
	log.Info(fmt.Sprintf(format, v...))
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

func Errorf(format string, v ...any) {
	log.Error(fmt.Sprintf(format, v...))
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Fatalf(format string, v ...any) {
	log.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
