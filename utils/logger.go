package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger 全局日志对象
var Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogger 初始化日志系统，debug 模式下输出调试日志
func InitLogger(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	Logger = zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(level)

	Logger.Info().Str("level", level.String()).Msg("日志系统初始化完成")
}

// ApiRequestLog 一次API请求的日志字段
type ApiRequestLog struct {
	RequestID string
	Method    string
	Path      string
	Query     interface{}
	Body      string
	Headers   map[string]string
}

// LogApiRequest 记录API请求
func LogApiRequest(req ApiRequestLog) {
	if auth := req.Headers["Authorization"]; len(auth) > 15 {
		req.Headers["Authorization"] = auth[:15] + "..."
	}

	Logger.Info().
		Str("requestId", req.RequestID).
		Str("method", req.Method).
		Str("path", req.Path).
		Interface("query", req.Query).
		Interface("headers", req.Headers).
		Msg("API请求")

	if req.Body != "" {
		Logger.Debug().Str("requestId", req.RequestID).Str("body", req.Body).Msg("API请求体")
	}
}

// LogApiResponse 记录API响应。响应体只在调试级别输出。
func LogApiResponse(requestID, method, path string, statusCode int, responseTime time.Duration, responseBody string) {
	event := Logger.Info()
	if statusCode >= 500 {
		event = Logger.Error()
	} else if statusCode >= 400 {
		event = Logger.Warn()
	}
	event.
		Str("requestId", requestID).
		Str("method", method).
		Str("path", path).
		Int("statusCode", statusCode).
		Dur("responseTime", responseTime).
		Int("size", len(responseBody)).
		Msg("API响应")

	Logger.Debug().Str("requestId", requestID).Str("body", responseBody).Msg("API响应体")
}

// LogInfo 记录
func LogInfo(context map[string]interface{}, message string) {
	Logger.Info().
		Interface("context", context).
		Msg(message)
}

// LogError 记录错误
func LogError(err error, context map[string]interface{}, message string) {
	Logger.Error().
		Err(err).
		Interface("context", context).
		Msg(message)
}

// LogDbOperation 记录数据库操作
func LogDbOperation(operation string, collection string, query interface{}, result interface{}) {
	Logger.Debug().
		Str("operation", operation).
		Str("collection", collection).
		Interface("query", query).
		Interface("result", result).
		Msg("数据库操作")
}
