package processor

import (
	"context"
	"io"
)

//
// 文本提取相关接口
//

// TextExtractor 文档文本提取器接口，不同文件格式各有实现
type TextExtractor interface {
	// ExtractTextFromReader 从io.Reader提取文本和元数据
	// 参数：
	// - ctx: 上下文
	// - reader: 文件内容的读取器
	// - uri: 资源标识符（可选，用于日志或元数据）
	// - options: 可选的解析配置
	// 返回：
	// - 提取的文本
	// - 附加的元数据（如页数等）
	// - 错误信息
	ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, options interface{}) (string, map[string]interface{}, error)

	// ExtractTextFromBytes 从字节数组提取文本和元数据
	ExtractTextFromBytes(ctx context.Context, data []byte, uri string, options interface{}) (string, map[string]interface{}, error)
}
