package logger

import (
	"log"
	"os"
)

// A very small log wrapper providing the methods used across the project.
type Logger struct {
	std   *log.Logger
	debug bool
}

// Init creates a logger; debug output is suppressed in prod.
func Init(env string) *Logger {
	l := log.New(os.Stdout, "", log.LstdFlags|log.Lmsgprefix)
	return &Logger{std: l, debug: env != "prod"}
}

func (l *Logger) Info(msg string, kvs ...interface{}) {
	l.std.Printf("INFO: %s %v", msg, kvs)
}

func (l *Logger) Debug(msg string, kvs ...interface{}) {
	if !l.debug {
		return
	}
	l.std.Printf("DEBUG: %s %v", msg, kvs)
}

func (l *Logger) Error(msg string, kvs ...interface{}) {
	l.std.Printf("ERROR: %s %v", msg, kvs)
}

func (l *Logger) Fatal(msg string, kvs ...interface{}) {
	l.std.Printf("FATAL: %s %v", msg, kvs)
	os.Exit(1)
}

func (l *Logger) Sync() error { return nil }
