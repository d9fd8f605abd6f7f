package logger

import (
  "fmt"

  "go.uber.org/zap"
)

// Logger is a thin key/value wrapper around zap's sugared logger. Layers
// derive scoped loggers with With (e.g. With("repo", "CampusRepo")) so every
// line carries where it came from.
type Logger struct {
  s *zap.SugaredLogger
}

func New(mode string) (*Logger, error) {
  var (
    z   *zap.Logger
    err error
  )
  switch mode {
  case "production":
    z, err = zap.NewProduction()
  case "development", "":
    z, err = zap.NewDevelopment()
  default:
    return nil, fmt.Errorf("unknown log mode %q", mode)
  }
  if err != nil {
    return nil, err
  }
  return &Logger{s: z.Sugar()}, nil
}

// NewNop returns a logger that discards everything. Used by tests.
func NewNop() *Logger {
  return &Logger{s: zap.NewNop().Sugar()}
}

func (l *Logger) With(keysAndValues ...interface{}) *Logger {
  return &Logger{s: l.s.With(keysAndValues...)}
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
  l.s.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
  l.s.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
  l.s.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
  l.s.Errorw(msg, keysAndValues...)
}

func (l *Logger) Sync() error {
  return l.s.Sync()
}
