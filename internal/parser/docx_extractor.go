package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxTagRegex       = regexp.MustCompile(`<[^>]+>`)
	docxParaBreakRegex = regexp.MustCompile(`</w:p>`)
	docxLineBreakRegex = regexp.MustCompile(`<w:br[^>]*/>|<w:cr[^>]*/>`)
)

// DocxTextExtractor 使用 nguyenthenguyen/docx 从 Word 文档提取纯文本
type DocxTextExtractor struct {
	logger *log.Logger
}

// DocxOption DOCX提取器的配置选项
type DocxOption func(*DocxTextExtractor)

// WithDocxLogger 配置自定义日志记录器
func WithDocxLogger(logger *log.Logger) DocxOption {
	return func(d *DocxTextExtractor) {
		d.logger = logger
	}
}

// NewDocxTextExtractor 初始化 DOCX 文本提取器
func NewDocxTextExtractor(options ...DocxOption) *DocxTextExtractor {
	extractor := &DocxTextExtractor{
		logger: log.New(os.Stderr, "[DOCX解析器] ", log.LstdFlags),
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor
}

// ExtractTextFromReader 从 io.Reader 中提取文本
func (d *DocxTextExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string, options interface{}) (string, map[string]interface{}, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read DOCX content for URI %s: %w", uri, err)
	}
	return d.ExtractTextFromBytes(ctx, data, uri, options)
}

// ExtractTextFromBytes 从字节数组提取文本内容
func (d *DocxTextExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string, options interface{}) (string, map[string]interface{}, error) {
	startTime := time.Now()
	d.logger.Printf("开始从字节数据提取DOCX文本 (URI: %s, 大小: %d 字节)", uri, len(data))

	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse DOCX for URI %s: %w", uri, err)
	}
	defer doc.Close()

	rawContent := doc.Editable().GetContent()
	text := docxXMLToPlainText(rawContent)

	metadata := map[string]interface{}{
		"source_uri":             uri,
		"extraction_time":        time.Now().Format(time.RFC3339),
		"processing_duration_ms": time.Since(startTime).Milliseconds(),
		"text_length":            len(text),
	}
	if extra, ok := options.(map[string]interface{}); ok {
		for k, v := range extra {
			metadata[k] = v
		}
	}

	d.logger.Printf("DOCX提取完成: 提取了 %d 个字符 (用时 %.2f秒)", len(text), time.Since(startTime).Seconds())
	return text, metadata, nil
}

// ExtractFullTextFromDocxFile 从给定的DOCX文件路径中提取完整的纯文本内容和元数据
func (d *DocxTextExtractor) ExtractFullTextFromDocxFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to open DOCX file %s: %w", filePath, err)
	}
	defer file.Close()

	return d.ExtractTextFromReader(ctx, file, filePath, map[string]interface{}{
		"source_file_path": filePath,
	})
}

// docxXMLToPlainText 把 document.xml 内容还原为带换行的纯文本。
// 段落结束和显式换行标签映射为\n, 其余标签全部剥掉。
func docxXMLToPlainText(content string) string {
	content = docxParaBreakRegex.ReplaceAllString(content, "\n")
	content = docxLineBreakRegex.ReplaceAllString(content, "\n")
	content = docxTagRegex.ReplaceAllString(content, "")

	// 还原XML实体
	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	content = replacer.Replace(content)

	// 压缩多余空行
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blankRun = 0
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
