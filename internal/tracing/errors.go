package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrorType 按子系统给span上的错误分类, 便于在追踪后端按类型过滤
type ErrorType string

const (
	// ErrorTypeValidation 输入校验错误(超长文本、非法文件类型等)
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeInternal 内部处理错误
	ErrorTypeInternal ErrorType = "internal"
	// ErrorTypeDB 数据库错误
	ErrorTypeDB ErrorType = "db"
	// ErrorTypeStorage 对象存储错误
	ErrorTypeStorage ErrorType = "storage"
	// ErrorTypeMessaging 消息队列错误
	ErrorTypeMessaging ErrorType = "messaging"
)

// RecordError 在span上记录错误并标记状态, 附带统一的分类属性
func RecordError(span trace.Span, err error, errorType ErrorType) {
	if span == nil || err == nil {
		return
	}

	span.RecordError(err)
	span.SetAttributes(
		attribute.String("error.type", string(errorType)),
		attribute.String("error.message", err.Error()),
	)
	span.SetStatus(codes.Error, err.Error())
}
