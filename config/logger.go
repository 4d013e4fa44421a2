package config

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// LoggerAPI 는 애플리케이션 전역에서 사용하는 최소 로거 인터페이스다.
type LoggerAPI interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그를 위한 공통 필드 타입이다.
type Fields map[string]any

// Logger 는 전역 로거 인스턴스다.
// InitLogger 가 호출되지 않더라도 기본 info 레벨로 동작하도록 초기화한다.
var Logger LoggerAPI = NewLogger("info")

// InitLogger 는 설정의 로그 레벨로 전역 로거를 초기화한다.
func InitLogger(cfg LoggingConfig) {
	level := strings.ToLower(strings.TrimSpace(cfg.Level))
	if level == "" {
		level = "info"
	}
	Logger = NewLogger(level)
}

// NewLogger 는 주어진 레벨로 gookit/slog 기반 로거를 생성한다.
func NewLogger(level string) LoggerAPI {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	// 기본 필드는 datetime/level/message 로만 제한하고 나머지는 Fields 로 출력한다.
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	return slog.NewWithHandlers(h)
}

// withServiceName 은 service_name 필드를 SERVICE_NAME 환경변수 기준으로 보강한다.
func withServiceName(fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	if _, ok := fields["service_name"]; !ok {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			fields["service_name"] = sn
		}
	}
	return fields
}

// InfoWithFields 는 request_id, span_id 등 구조화 필드를 포함한 로그를 출력한다.
func InfoWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Logger.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Info(msg)
		return
	}
	Logger.Info(msg)
}

func WarnWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Logger.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Warn(msg)
		return
	}
	Logger.Warn(msg)
}

func ErrorWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Logger.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Error(msg)
		return
	}
	Logger.Error(msg)
}

func DebugWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Logger.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Debug(msg)
		return
	}
	Logger.Debug(msg)
}
