package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrInputTooLarge        = errors.New("输入文本超过大小上限")
	ErrExtractTextFailed    = errors.New("提取简历文本失败")
	ErrUnsupportedFileType  = errors.New("不支持的文件类型")
	ErrStoreFileFailed      = errors.New("上传文件到对象存储失败")
	ErrPublishMessageFailed = errors.New("发布分析完成消息失败")
	ErrDatabaseFailed       = errors.New("数据库操作失败")
)

// ProcessError 包含详细错误信息的自定义错误
type ProcessError struct {
	SubmissionUUID string
	Op             string
	BaseErr        error
	Detail         string
}

func (e *ProcessError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, UUID:%s): %s", e.BaseErr, e.Op, e.SubmissionUUID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, UUID:%s)", e.BaseErr, e.Op, e.SubmissionUUID)
}

func (e *ProcessError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ProcessError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewOversizeError(uuid, detail string) error {
	return &ProcessError{
		SubmissionUUID: uuid,
		Op:             "size_check",
		BaseErr:        ErrInputTooLarge,
		Detail:         detail,
	}
}

func NewExtractError(uuid, detail string) error {
	return &ProcessError{
		SubmissionUUID: uuid,
		Op:             "extract",
		BaseErr:        ErrExtractTextFailed,
		Detail:         detail,
	}
}

func NewUnsupportedFileTypeError(uuid, detail string) error {
	return &ProcessError{
		SubmissionUUID: uuid,
		Op:             "file_type",
		BaseErr:        ErrUnsupportedFileType,
		Detail:         detail,
	}
}

func NewStoreError(uuid, detail string) error {
	return &ProcessError{
		SubmissionUUID: uuid,
		Op:             "store",
		BaseErr:        ErrStoreFileFailed,
		Detail:         detail,
	}
}

func NewPublishError(uuid, detail string) error {
	return &ProcessError{
		SubmissionUUID: uuid,
		Op:             "publish",
		BaseErr:        ErrPublishMessageFailed,
		Detail:         detail,
	}
}

func NewDatabaseError(uuid, detail string) error {
	return &ProcessError{
		SubmissionUUID: uuid,
		Op:             "database",
		BaseErr:        ErrDatabaseFailed,
		Detail:         detail,
	}
}
