// File: pkg/logger/echo_adapter.go
package logger

import (
	"io"
	"sync/atomic"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EchoZapLogger는 echo.Logger 인터페이스를 구현한 zap 로거 래퍼입니다.
// echo가 내부적으로 남기는 로그(서버 시작 등)를 zap으로 보냅니다.
type EchoZapLogger struct {
	Logger *zap.Logger
	sugar  *zap.SugaredLogger
	level  atomic.Uint32
	prefix atomic.Value
}

// NewEchoZapLogger는 Echo의 Logger 인터페이스를 구현한 zap 로거 래퍼를 생성합니다.
func NewEchoZapLogger(logger *zap.Logger) *EchoZapLogger {
	l := &EchoZapLogger{
		Logger: logger,
		sugar:  logger.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
	l.level.Store(uint32(log.INFO))
	l.prefix.Store("")
	return l
}

// enabled gommon 레벨 기준으로 출력 여부를 판단합니다.
func (l *EchoZapLogger) enabled(lvl log.Lvl) bool {
	return lvl >= log.Lvl(l.level.Load())
}

// toZapLevel gommon 레벨을 zap 레벨로 변환합니다.
func toZapLevel(lvl log.Lvl) zapcore.Level {
	switch lvl {
	case log.DEBUG:
		return zapcore.DebugLevel
	case log.WARN:
		return zapcore.WarnLevel
	case log.ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *EchoZapLogger) Output() io.Writer { return &zapWriter{logger: l.Logger} }

// SetOutput zap에서는 무시됩니다.
func (l *EchoZapLogger) SetOutput(w io.Writer) {}

func (l *EchoZapLogger) Level() log.Lvl { return log.Lvl(l.level.Load()) }

func (l *EchoZapLogger) SetLevel(v log.Lvl) { l.level.Store(uint32(v)) }

// SetHeader zap에서는 무시됩니다.
func (l *EchoZapLogger) SetHeader(h string) {}

func (l *EchoZapLogger) Prefix() string { return l.prefix.Load().(string) }

func (l *EchoZapLogger) SetPrefix(p string) { l.prefix.Store(p) }

func (l *EchoZapLogger) logj(lvl log.Lvl, j log.JSON) {
	if !l.enabled(lvl) {
		return
	}
	if ce := l.Logger.Check(toZapLevel(lvl), "json_message"); ce != nil {
		ce.Write(zap.Any("json", j))
	}
}

func (l *EchoZapLogger) Print(i ...interface{})                 { l.sugar.Info(i...) }
func (l *EchoZapLogger) Printf(format string, i ...interface{}) { l.sugar.Infof(format, i...) }
func (l *EchoZapLogger) Printj(j log.JSON)                      { l.logj(log.INFO, j) }

func (l *EchoZapLogger) Debug(i ...interface{}) {
	if l.enabled(log.DEBUG) {
		l.sugar.Debug(i...)
	}
}

func (l *EchoZapLogger) Debugf(format string, i ...interface{}) {
	if l.enabled(log.DEBUG) {
		l.sugar.Debugf(format, i...)
	}
}

func (l *EchoZapLogger) Debugj(j log.JSON) { l.logj(log.DEBUG, j) }

func (l *EchoZapLogger) Info(i ...interface{}) {
	if l.enabled(log.INFO) {
		l.sugar.Info(i...)
	}
}

func (l *EchoZapLogger) Infof(format string, i ...interface{}) {
	if l.enabled(log.INFO) {
		l.sugar.Infof(format, i...)
	}
}

func (l *EchoZapLogger) Infoj(j log.JSON) { l.logj(log.INFO, j) }

func (l *EchoZapLogger) Warn(i ...interface{}) {
	if l.enabled(log.WARN) {
		l.sugar.Warn(i...)
	}
}

func (l *EchoZapLogger) Warnf(format string, i ...interface{}) {
	if l.enabled(log.WARN) {
		l.sugar.Warnf(format, i...)
	}
}

func (l *EchoZapLogger) Warnj(j log.JSON) { l.logj(log.WARN, j) }

func (l *EchoZapLogger) Error(i ...interface{})                 { l.sugar.Error(i...) }
func (l *EchoZapLogger) Errorf(format string, i ...interface{}) { l.sugar.Errorf(format, i...) }
func (l *EchoZapLogger) Errorj(j log.JSON)                      { l.logj(log.ERROR, j) }

func (l *EchoZapLogger) Fatal(i ...interface{})                 { l.sugar.Fatal(i...) }
func (l *EchoZapLogger) Fatalf(format string, i ...interface{}) { l.sugar.Fatalf(format, i...) }
func (l *EchoZapLogger) Fatalj(j log.JSON)                      { l.Logger.Fatal("json_message", zap.Any("json", j)) }

func (l *EchoZapLogger) Panic(i ...interface{})                 { l.sugar.Panic(i...) }
func (l *EchoZapLogger) Panicf(format string, i ...interface{}) { l.sugar.Panicf(format, i...) }
func (l *EchoZapLogger) Panicj(j log.JSON)                      { l.Logger.Panic("json_message", zap.Any("json", j)) }

// zapWriter는 io.Writer 인터페이스를 구현한 zap 로거 래퍼입니다.
type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Write(p []byte) (n int, err error) {
	w.logger.Info(string(p))
	return len(p), nil
}
